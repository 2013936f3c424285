// SPDX-License-Identifier: MIT

package vector_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/element"
	"github.com/katalvlaran/dynmat/textio"
	"github.com/katalvlaran/dynmat/vector"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Of(t, 1, -2, 30).WriteText(&buf))
	require.Equal(t, "1 -2 30", buf.String())
	require.Equal(t, "1 -2 30", Of(t, 1, -2, 30).String())
}

func TestReadText(t *testing.T) {
	v := MustVector(t, 4)
	sc := textio.NewScanner(strings.NewReader("4 3\n2\t1 extra"))
	require.NoError(t, v.ReadText(sc))
	require.Equal(t, []int{4, 3, 2, 1}, v.Values())

	// the next token is left for the caller
	tok, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, "extra", tok)
}

func TestReadTextParseFailureKeepsContents(t *testing.T) {
	v := Of(t, 7, 7, 7)
	err := v.ReadText(textio.NewScanner(strings.NewReader("1 x 3")))
	require.ErrorIs(t, err, element.ErrParse)
	require.Equal(t, []int{7, 7, 7}, v.Values())
}

func TestReadTextShortInput(t *testing.T) {
	v := Of(t, 7, 7, 7)
	err := v.ReadText(textio.NewScanner(strings.NewReader("1 2")))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, []int{7, 7, 7}, v.Values())
}

func TestReadTextNilReader(t *testing.T) {
	require.ErrorIs(t, MustVector(t, 1).ReadText(nil), vector.ErrInvalidArgument)
}

func TestTextRoundTrip(t *testing.T) {
	orig := Of(t, 5, -1, 0, 123456789, -42)

	var buf bytes.Buffer
	require.NoError(t, orig.WriteText(&buf))

	back := MustVector(t, orig.Len())
	require.NoError(t, back.ReadText(textio.NewScanner(&buf)))
	require.True(t, back.Equal(orig))
}

func TestFloatTextRoundTrip(t *testing.T) {
	orig, err := vector.FromSlice([]float64{0.1, -2.5e-10, 1e21, 3})
	require.NoError(t, err)

	back, err := vector.New[float64](orig.Len())
	require.NoError(t, err)
	require.NoError(t, back.ReadText(textio.NewScanner(strings.NewReader(orig.String()))))
	require.True(t, back.Equal(orig))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestWriteTextError(t *testing.T) {
	err := Of(t, 1, 2).WriteText(failingWriter{})
	require.ErrorIs(t, err, io.ErrShortWrite)
}
