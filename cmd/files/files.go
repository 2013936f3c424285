// SPDX-License-Identifier: MIT

// Package files reads vector and matrix files and writes command results.
//
// File format: the first token is the length (vector) or order (matrix),
// followed by exactly that many elements (vector) or rows (matrix), all
// whitespace-separated. The path "-" reads standard input.
package files

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/katalvlaran/dynmat/element"
	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/textio"
	"github.com/katalvlaran/dynmat/vector"
)

var (
	// ErrBadHeader is returned when the size token is missing or not an integer.
	ErrBadHeader = errors.New("missing or malformed size header")

	// ErrTrailingData is returned when tokens follow the last element.
	ErrTrailingData = errors.New("unexpected data after last element")
)

// Stdio is the path naming standard input or output.
const Stdio = "-"

// ReadVector reads a vector file at path.
func ReadVector[T any](cmd *cobra.Command, ar element.Arithmetic[T], path string, opts ...vector.Option) (*vector.Vector[T], error) {
	var v *vector.Vector[T]
	err := withTokens(cmd, path, func(sc *textio.Scanner) error {
		n, err := header(sc)
		if err != nil {
			return err
		}
		if v, err = vector.NewOf(ar, n, opts...); err != nil {
			return err
		}
		if err := v.ReadText(sc); err != nil {
			return err
		}

		return trailing(sc)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// ReadMatrix reads a matrix file at path.
func ReadMatrix[T any](cmd *cobra.Command, ar element.Arithmetic[T], path string, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	var m *matrix.Matrix[T]
	err := withTokens(cmd, path, func(sc *textio.Scanner) error {
		n, err := header(sc)
		if err != nil {
			return err
		}
		if m, err = matrix.NewOf(ar, n, opts...); err != nil {
			return err
		}
		if err := m.ReadText(sc); err != nil {
			return err
		}

		return trailing(sc)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// withTokens opens path (or stdin for "-") and hands a scanner to fn.
func withTokens(cmd *cobra.Command, path string, fn func(*textio.Scanner) error) (err error) {
	if path == Stdio {
		return fn(textio.NewScanner(cmd.InOrStdin()))
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return fn(textio.NewScanner(f))
}

func header(sc *textio.Scanner) (int, error) {
	tok, err := sc.Next()
	if errors.Is(err, io.EOF) {
		return 0, ErrBadHeader
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}

	return n, nil
}

func trailing(sc *textio.Scanner) error {
	tok, err := sc.Next()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	return fmt.Errorf("%w: %q", ErrTrailingData, tok)
}

// Emit runs write against the command output, or against a buffer that
// is then written atomically to path.
func Emit(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == Stdio {
		return write(cmd.OutOrStdout())
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}

	return atomic.WriteFile(path, &buf)
}

// WriteVector writes v in file format: length line, then the elements.
func WriteVector[T any](w io.Writer, v *vector.Vector[T]) error {
	if _, err := fmt.Fprintf(w, "%d\n", v.Len()); err != nil {
		return err
	}
	if err := v.WriteText(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// WriteMatrix writes m in file format: order line, then one line per row.
func WriteMatrix[T any](w io.Writer, m *matrix.Matrix[T]) error {
	if _, err := fmt.Fprintf(w, "%d\n", m.Order()); err != nil {
		return err
	}

	return m.WriteText(w)
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// WriteVerdict prints "equal" or "not equal".
func WriteVerdict(w io.Writer, equal bool) error {
	var err error
	if equal {
		_, err = green.Fprintln(w, "equal")
	} else {
		_, err = red.Fprintln(w, "not equal")
	}

	return err
}
