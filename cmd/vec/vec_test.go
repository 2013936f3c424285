// SPDX-License-Identifier: MIT

package vec_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/cmd"
	"github.com/katalvlaran/dynmat/cmd/cmdtest"
	"github.com/katalvlaran/dynmat/cmd/files"
	"github.com/katalvlaran/dynmat/element"
	"github.com/katalvlaran/dynmat/vector"
)

func td(name string) string { return filepath.Join("testdata", name) }

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"add", []string{"vec", "add", td("a.txt"), td("b.txt")}},
		{"sub", []string{"vec", "sub", td("b.txt"), td("a.txt")}},
		{"dot", []string{"vec", "dot", td("a.txt"), td("b.txt")}},
		{"eq_same", []string{"vec", "eq", td("a.txt"), td("a.txt")}},
		{"eq_diff", []string{"vec", "eq", td("a.txt"), td("b.txt")}},
		{"scale", []string{"vec", "scale", td("a.txt"), "--by", "3"}},
		{"unshift", []string{"vec", "unshift", td("a.txt"), "--by", "2"}},
		{"shift_float", []string{"--type", "float", "vec", "shift", td("fa.txt"), "--by", "0.25"}},
		{"dot_decimal", []string{"-t", "decimal", "vec", "dot", td("da.txt"), td("da.txt")}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := goldie.New(t)
			args := append([]string{"--no-color"}, test.args...)
			got := cmdtest.Run(t, cmd.CreateCmd(), args)
			g.Assert(t, test.name, got)
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"length mismatch", []string{"vec", "add", td("a.txt"), td("short.txt")}, vector.ErrDimensionMismatch},
		{"float as int", []string{"vec", "dot", td("fa.txt"), td("fa.txt")}, element.ErrParse},
		{"truncated", []string{"vec", "eq", td("truncated.txt"), td("a.txt")}, io.ErrUnexpectedEOF},
		{"trailing", []string{"vec", "eq", td("trailing.txt"), td("a.txt")}, files.ErrTrailingData},
		{"over limit", []string{"--config", td("limits.yaml"), "vec", "add", td("a.txt"), td("a.txt")}, vector.ErrInvalidSize},
		{"bad scalar", []string{"vec", "scale", td("a.txt"), "--by", "x"}, element.ErrParse},
		{"missing header", []string{"vec", "add", td("a.txt"), "-"}, files.ErrBadHeader},
		{"missing file", []string{"vec", "add", td("nope.txt"), td("a.txt")}, os.ErrNotExist},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := cmdtest.RunErr(t, cmd.CreateCmd(), test.args)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	cmdtest.RunErr(t, cmd.CreateCmd(), []string{"vec", "scale", td("a.txt")})
	cmdtest.RunErr(t, cmd.CreateCmd(), []string{"vec", "add", td("a.txt")})
	cmdtest.RunErr(t, cmd.CreateCmd(), []string{"--type", "complex", "vec", "add", td("a.txt"), td("b.txt")})
}

func TestStdinOperand(t *testing.T) {
	got := cmdtest.RunInput(t, cmd.CreateCmd(), "3 4 5 6", []string{"vec", "add", "-", td("a.txt")})
	require.Equal(t, "3\n5 7 9\n", string(got))
}

func TestOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sum.txt")
	got := cmdtest.Run(t, cmd.CreateCmd(), []string{"-o", out, "vec", "add", td("a.txt"), td("b.txt")})
	require.Empty(t, got)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "3\n11 22 33\n", string(b))
}

func TestVerbose(t *testing.T) {
	stdout, stderr := cmdtest.RunStderr(t, cmd.CreateCmd(), []string{"--verbose", "vec", "dot", td("a.txt"), td("a.txt")})
	require.Equal(t, "14\n", string(stdout))
	require.Contains(t, string(stderr), "dynmat: vec dot: type int")
	require.Contains(t, string(stderr), "length 3")
}
