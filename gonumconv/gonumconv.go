// SPDX-License-Identifier: MIT

// Package gonumconv converts float64 vectors and matrices to and from
// gonum's mat types, so results can be handed to gonum routines
// (decompositions, norms) that this module deliberately does not offer.
//
// Every conversion copies; nothing is shared with the gonum value.
package gonumconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// ToDense copies m into a new *mat.Dense.
// Errors: matrix.ErrInvalidArgument for a nil matrix, matrix.ErrInvalidSize
// for an empty (moved-from) one, which gonum cannot represent.
func ToDense(m *matrix.Matrix[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("gonumconv.ToDense: %w", matrix.ErrInvalidArgument)
	}
	n := m.Order()
	if n == 0 {
		return nil, fmt.Errorf("gonumconv.ToDense: %w", matrix.ErrInvalidSize)
	}

	data := make([]float64, 0, n*n)
	for _, row := range m.Values() {
		data = append(data, row...)
	}

	return mat.NewDense(n, n, data), nil
}

// FromMatrix copies a square gonum matrix.
// Errors: matrix.ErrInvalidArgument for nil, matrix.ErrDimensionMismatch
// when src is not square, matrix.ErrInvalidSize above the max order.
func FromMatrix(src mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, fmt.Errorf("gonumconv.FromMatrix: %w", matrix.ErrInvalidArgument)
	}
	r, c := src.Dims()
	if r != c {
		return nil, fmt.Errorf("gonumconv.FromMatrix: %dx%d: %w", r, c, matrix.ErrDimensionMismatch)
	}
	m, err := matrix.New[float64](r, opts...)
	if err != nil {
		return nil, fmt.Errorf("gonumconv.FromMatrix: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, src.At(i, j)) // in range by construction
		}
	}

	return m, nil
}

// ToVecDense copies v into a new *mat.VecDense.
func ToVecDense(v *vector.Vector[float64]) (*mat.VecDense, error) {
	if v == nil {
		return nil, fmt.Errorf("gonumconv.ToVecDense: %w", vector.ErrInvalidArgument)
	}
	if v.Len() == 0 {
		return nil, fmt.Errorf("gonumconv.ToVecDense: %w", vector.ErrInvalidSize)
	}

	return mat.NewVecDense(v.Len(), v.Values()), nil
}

// FromVector copies a gonum vector.
func FromVector(src mat.Vector, opts ...vector.Option) (*vector.Vector[float64], error) {
	if src == nil {
		return nil, fmt.Errorf("gonumconv.FromVector: %w", vector.ErrInvalidArgument)
	}
	n := src.Len()
	data := make([]float64, n)
	for i := range data {
		data[i] = src.AtVec(i)
	}
	v, err := vector.FromSlice(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("gonumconv.FromVector: %w", err)
	}

	return v, nil
}
