// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/config"
	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

func TestDefault(t *testing.T) {
	l := config.Default()
	require.Equal(t, 100_000_000, l.MaxVectorLength)
	require.Equal(t, 10_000, l.MaxMatrixOrder)
	require.NoError(t, l.Validate())
}

func TestLoad(t *testing.T) {
	l, err := config.Load(strings.NewReader("max_matrix_order: 4\n"))
	require.NoError(t, err)
	require.Equal(t, config.Limits{MaxVectorLength: vector.DefaultMaxLength, MaxMatrixOrder: 4}, l)

	l, err = config.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), l)
}

func TestLoadRejects(t *testing.T) {
	_, err := config.Load(strings.NewReader("max_vector_length: 0\n"))
	require.ErrorIs(t, err, config.ErrInvalidLimit)

	_, err = config.Load(strings.NewReader("max_matrix_order: -3\n"))
	require.ErrorIs(t, err, config.ErrInvalidLimit)

	_, err = config.Load(strings.NewReader("max_rows: 3\n"))
	require.Error(t, err)

	_, err = config.Load(strings.NewReader("max_matrix_order: [1, 2]\n"))
	require.Error(t, err)
}

func TestOptionsApplyLimits(t *testing.T) {
	l := config.Limits{MaxVectorLength: 3, MaxMatrixOrder: 2}

	_, err := vector.New[int](4, l.VectorOptions()...)
	require.ErrorIs(t, err, vector.ErrInvalidSize)
	_, err = vector.New[int](3, l.VectorOptions()...)
	require.NoError(t, err)

	_, err = matrix.New[int](3, l.MatrixOptions()...)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
	_, err = matrix.New[int](2, l.MatrixOptions()...)
	require.NoError(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_vector_length: 10\nmax_matrix_order: 3\n"), 0o600))

	l, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.Limits{MaxVectorLength: 10, MaxMatrixOrder: 3}, l)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
