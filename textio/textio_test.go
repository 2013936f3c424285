// SPDX-License-Identifier: MIT

package textio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/textio"
)

func TestScannerTokens(t *testing.T) {
	s := textio.NewScanner(strings.NewReader("  1 2\n\t3   \r\n-4 "))

	var got []string
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	require.Equal(t, []string{"1", "2", "3", "-4"}, got)

	// exhausted streams keep reporting EOF
	_, err := s.Next()
	require.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestScannerReadError(t *testing.T) {
	s := textio.NewScanner(failingReader{})
	_, err := s.Next()
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
