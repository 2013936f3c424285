// SPDX-License-Identifier: MIT

// Package textio provides the token stream consumed by the ReadText
// methods of vector.Vector and matrix.Matrix.
//
// A token is a maximal run of non-space characters (bufio.ScanWords).
// The stream owns no resource: opening and closing the underlying reader
// stays with the caller.
package textio

import (
	"bufio"
	"io"
)

// maxTokenSize bounds a single token; element tokens are short numbers.
const maxTokenSize = 1 << 20

// TokenReader yields whitespace-delimited tokens in order.
// Next returns io.EOF once the stream is exhausted.
type TokenReader interface {
	Next() (string, error)
}

// Scanner is a TokenReader over an io.Reader.
type Scanner struct {
	sc *bufio.Scanner
}

var _ TokenReader = (*Scanner)(nil)

// NewScanner wraps r. Reads are buffered, so r must not be shared with
// other readers while the Scanner is in use.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Scanner{sc: sc}
}

// Next returns the next token, io.EOF at the end of input, or the
// underlying read error.
func (s *Scanner) Next() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
