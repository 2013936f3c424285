// SPDX-License-Identifier: MIT

package vector

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/dynmat/textio"
)

// ReadText reads exactly Len() tokens from r and parses them in order.
//
// Implementation:
//   - Stage 1: parse every token into a scratch buffer.
//   - Stage 2: commit the buffer only when all tokens parsed.
//
// Errors:
//   - ErrInvalidArgument when r is nil.
//   - io.ErrUnexpectedEOF when the stream ends early.
//   - element.ErrParse (wrapped) for a malformed token.
//
// v keeps its previous contents on any error. Tokens already consumed
// from r stay consumed.
func (v *Vector[T]) ReadText(r textio.TokenReader) error {
	if r == nil {
		return vectorErrorf(ctxReadText, ErrInvalidArgument)
	}

	buf := make([]T, len(v.data))
	for i := range buf {
		tok, err := r.Next()
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return indexErrorf(ctxReadText, i, err)
		}
		if buf[i], err = v.ar.Parse(tok); err != nil {
			return indexErrorf(ctxReadText, i, err)
		}
	}
	copy(v.data, buf)

	return nil
}

// WriteText writes the elements separated by single spaces, without a
// trailing separator or newline.
func (v *Vector[T]) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, x := range v.data {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return vectorErrorf(ctxWriteText, err)
			}
		}
		if _, err := bw.WriteString(v.ar.Format(x)); err != nil {
			return vectorErrorf(ctxWriteText, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Vector.%s: flush: %w", ctxWriteText, err)
	}

	return nil
}
