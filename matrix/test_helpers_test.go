// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests.
//   • Keep every fixture integer-valued so equality is exact.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// MustMatrix ALLOCATES an n×n int matrix or fails the test.
func MustMatrix(t *testing.T, n int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.New[int](n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// FilledMatrix RETURNS an n×n int matrix with every cell set to x.
func FilledMatrix(t *testing.T, n, x int) *matrix.Matrix[int] {
	t.Helper()
	m := MustMatrix(t, n)
	m.Fill(x)

	return m
}

// Rows BUILDS an int matrix from literal rows.
func Rows(t *testing.T, data ...[]int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.FromRows(data)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", data, err)
	}

	return m
}

// Vec BUILDS an int vector from values.
func Vec(t *testing.T, vals ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.FromSlice(vals)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", vals, err)
	}

	return v
}

// MustAt READS cell (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix[int], i, j int) int {
	t.Helper()
	x, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return x
}
