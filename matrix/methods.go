// SPDX-License-Identifier: MIT

// Package matrix: comparison and arithmetic on Matrix.
// All functions perform fail-fast validation, return wrapped sentinels on
// dimension mismatches and always compute into a freshly allocated result,
// so operands are never modified and may alias each other.
package matrix

import (
	"github.com/katalvlaran/dynmat/vector"
)

// Equal reports whether m and o have the same order and equal rows
// (vector equality, row by row). Two nil matrices are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }

// MulScalar returns a new matrix whose row i is row i of m times c.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(c T) *Matrix[T] {
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.MulScalar(c)
	}

	return m.adopt(rows)
}

// Add returns m + o, row i being the elementwise sum of both rows i.
// Stage 1 (Validate): nil and order checks.
// Stage 2 (Execute): delegate to vector.Add per row.
// Errors: ErrInvalidArgument, ErrDimensionMismatch.
// Complexity: O(n²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameOrder(m, o); err != nil {
		return nil, matrixErrorf(ctxAdd, err)
	}

	return m.rowwise(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns m - o row by row.
// Errors: ErrInvalidArgument, ErrDimensionMismatch.
// Complexity: O(n²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameOrder(m, o); err != nil {
		return nil, matrixErrorf(ctxSub, err)
	}

	return m.rowwise(ctxSub, o, (*vector.Vector[T]).Sub)
}

// MulVector returns the vector whose element i is the dot product of
// row i with v.
// Errors: ErrInvalidArgument for nil v, ErrDimensionMismatch unless
// v.Len() == Order().
// Complexity: O(n²).
func (m *Matrix[T]) MulVector(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateVecLen(v, len(m.rows)); err != nil {
		return nil, matrixErrorf(ctxMulVector, err)
	}

	// v.Clone gives a fresh vector of the right length; every slot is
	// overwritten below and v itself is only read.
	out := v.Clone()
	for i, r := range m.rows {
		s, err := r.Dot(v)
		if err != nil {
			return nil, matrixErrorf(ctxMulVector, err)
		}
		_ = out.Set(i, s) // i < Order() == out.Len()
	}

	return out, nil
}

// Mul returns the matrix product m × o:
//
//	out[i][j] = Σ_k m[i][k] * o[k][j], accumulated from Zero in k order.
//
// Implementation:
//   - Stage 1: validate operands (nil, equal order).
//   - Stage 2: snapshot both operands' cells, so aliasing (m.Mul(m)) is safe.
//   - Stage 3: triple loop i→j→k into fresh rows; a cell is written once,
//     after its sum is complete.
//
// Errors: ErrInvalidArgument, ErrDimensionMismatch.
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameOrder(m, o); err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}

	n := len(m.rows)
	left, right := m.Values(), o.Values()
	rows := make([]*vector.Vector[T], n)
	for i := 0; i < n; i++ {
		cells := make([]T, n)
		for j := 0; j < n; j++ {
			acc := m.zero()
			for k := 0; k < n; k++ {
				acc = m.ar.Add(acc, m.ar.Mul(left[i][k], right[k][j]))
			}
			cells[j] = acc
		}
		row, err := vector.FromSliceOf(m.ar, cells, vector.WithMaxLength(n))
		if err != nil {
			return nil, matrixErrorf(ctxMul, err)
		}
		rows[i] = row
	}

	return m.adopt(rows), nil
}

// rowwise applies op to each pair of rows i; orders are already validated.
func (m *Matrix[T]) rowwise(
	method string,
	o *Matrix[T],
	op func(a, b *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	rows := make([]*vector.Vector[T], len(m.rows))
	for i := range m.rows {
		r, err := op(m.rows[i], o.rows[i])
		if err != nil {
			return nil, matrixErrorf(method, err)
		}
		rows[i] = r
	}

	return m.adopt(rows), nil
}
