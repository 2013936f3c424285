// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dynmat/textio"
	"github.com/katalvlaran/dynmat/vector"
)

// ReadText reads Order() rows of Order() tokens each from r.
//
// Rows are parsed into scratch copies through the vector's ReadText and
// committed together, so m keeps its previous contents when any token is
// missing or malformed.
//
// Errors:
//   - ErrInvalidArgument when r is nil.
//   - io.ErrUnexpectedEOF, element.ErrParse (wrapped) from the rows.
func (m *Matrix[T]) ReadText(r textio.TokenReader) error {
	if r == nil {
		return matrixErrorf(ctxReadText, ErrInvalidArgument)
	}

	scratch := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		scratch[i] = row.Clone()
		if err := scratch[i].ReadText(r); err != nil {
			return fmt.Errorf("Matrix.%s: row %d: %w", ctxReadText, i, err)
		}
	}
	for i := range m.rows {
		_ = m.rows[i].Assign(scratch[i]) // same length
	}

	return nil
}

// WriteText writes each row as vector text followed by a line break.
func (m *Matrix[T]) WriteText(w io.Writer) error {
	for i, row := range m.rows {
		if err := row.WriteText(w); err != nil {
			return fmt.Errorf("Matrix.%s: row %d: %w", ctxWriteText, i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return matrixErrorf(ctxWriteText, err)
		}
	}

	return nil
}
