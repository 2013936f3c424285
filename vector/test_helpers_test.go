// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
)

// MustVector allocates a length-n int vector or fails the test.
func MustVector(t *testing.T, n int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.New[int](n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return v
}

// Filled returns a length-n int vector with every element set to x.
func Filled(t *testing.T, n, x int) *vector.Vector[int] {
	t.Helper()
	v := MustVector(t, n)
	v.Fill(x)

	return v
}

// Of builds an int vector holding vals.
func Of(t *testing.T, vals ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.FromSlice(vals)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", vals, err)
	}

	return v
}
