// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrInvalidArgument)
	require.NoError(t, matrix.ValidateNotNil(MustMatrix(t, 1)))
}

func TestValidateSameOrder(t *testing.T) {
	a, b := MustMatrix(t, 2), MustMatrix(t, 3)
	require.ErrorIs(t, matrix.ValidateSameOrder(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameOrder(a, nil), matrix.ErrInvalidArgument)
	require.ErrorIs(t, matrix.ValidateSameOrder(nil, a), matrix.ErrInvalidArgument)
	require.NoError(t, matrix.ValidateSameOrder(a, MustMatrix(t, 2)))
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen[int](nil, 2), matrix.ErrInvalidArgument)
	require.ErrorIs(t, matrix.ValidateVecLen(Vec(t, 1, 2, 3), 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen(Vec(t, 1, 2), 2))

	var empty *vector.Vector[int]
	require.ErrorIs(t, matrix.ValidateVecLen(empty, 0), matrix.ErrInvalidArgument)
}

func TestValidateIndex(t *testing.T) {
	require.NoError(t, matrix.ValidateIndex(0, 1))
	require.ErrorIs(t, matrix.ValidateIndex(1, 1), matrix.ErrIndexOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(-1, 1), matrix.ErrIndexOutOfRange)
}
