// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	if o.MaxOrder() != matrix.DefaultMaxOrder {
		t.Fatalf("maxOrder default mismatch: got %v, want %v", o.MaxOrder(), matrix.DefaultMaxOrder)
	}
}

// 2) TestNewOptions_LastWins ensures repeated options resolve to the last one and nil is skipped.
func TestNewOptions_LastWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithMaxOrder(3), nil, matrix.WithMaxOrder(7))
	if o.MaxOrder() != 7 {
		t.Fatalf("last-writer-wins failed: maxOrder=%d, want 7", o.MaxOrder())
	}
}

// 3) TestWithMaxOrder_PanicsOnNonPositive checks that nonsense limits are programmer errors.
func TestWithMaxOrder_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxOrder(0) })
	require.Panics(t, func() { matrix.WithMaxOrder(-1) })
}

// 4) TestMaxOrder_Boundary builds exactly at the limit and one above it.
func TestMaxOrder_Boundary(t *testing.T) {
	_, err := matrix.New[int](4, matrix.WithMaxOrder(4))
	require.NoError(t, err)

	_, err = matrix.New[int](5, matrix.WithMaxOrder(4))
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	_, err = matrix.FromRows([][]int{{1, 2}, {3, 4}}, matrix.WithMaxOrder(1))
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
}
