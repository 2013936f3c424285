// SPDX-License-Identifier: MIT

// Package matrix - square matrix stored as owned vector rows.
//
// Purpose:
//   - Hold exactly Order() rows, each a pinned vector.Vector of length Order().
//   - Reuse the vector's storage, checks and arithmetic row by row.
//   - Keep value semantics: Clone/Assign deep-copy every row, Take/MoveAssign
//     transfer the row sequence without copying.
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n²); Take/MoveAssign: O(1); Row/At/Set: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dynmat/element"
	"github.com/katalvlaran/dynmat/vector"
)

// Matrix is a square grid of T addressed by (row, column).
//
// Rows are pinned vectors: element writes through Row(i) are allowed,
// length changes are refused, so every row keeps length Order().
// A matrix emptied by Take has Order() == 0.
//
// A Matrix is not safe for concurrent use.
type Matrix[T any] struct {
	rows []*vector.Vector[T]   // len(rows) is the order; each row has len == order
	ar   element.Arithmetic[T] // element capability set shared with the rows
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates an order×order matrix of zero-valued built-in numbers.
// See NewOf for the validation rules.
func New[T element.Number](order int, opts ...Option) (*Matrix[T], error) {
	return NewOf[T](element.Numeric[T]{}, order, opts...)
}

// NewOf creates an order×order matrix with every cell set to ar.Zero().
//
// Implementation:
//   - Stage 1: reject a nil capability set (ErrInvalidArgument).
//   - Stage 2: reject order <= 0 or order > max order (ErrInvalidSize).
//   - Stage 3: allocate order pinned rows of length order.
//
// Errors:
//   - ErrInvalidArgument, ErrInvalidSize. No matrix is returned on error.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewOf[T any](ar element.Arithmetic[T], order int, opts ...Option) (*Matrix[T], error) {
	if ar == nil {
		return nil, matrixErrorf(ctxNew, ErrInvalidArgument)
	}
	o := NewOptions(opts...)
	if order <= 0 || order > o.maxOrder {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxNew, order, ErrInvalidSize)
	}

	rows := make([]*vector.Vector[T], order)
	for i := range rows {
		row, err := vector.NewOf(ar, order, vector.WithMaxLength(order))
		if err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
		rows[i] = row.Pin()
	}

	return &Matrix[T]{rows: rows, ar: ar}, nil
}

// FromRows builds a matrix of built-in numbers from a square [][]T.
// See FromRowsOf.
func FromRows[T element.Number](data [][]T, opts ...Option) (*Matrix[T], error) {
	return FromRowsOf[T](element.Numeric[T]{}, data, opts...)
}

// FromRowsOf deep-copies data into a new matrix.
//
// Errors:
//   - ErrInvalidArgument when ar or data is nil.
//   - ErrInvalidSize when len(data) is outside (0, max order].
//   - ErrDimensionMismatch when a row's length differs from len(data).
func FromRowsOf[T any](ar element.Arithmetic[T], data [][]T, opts ...Option) (*Matrix[T], error) {
	if ar == nil || data == nil {
		return nil, matrixErrorf(ctxNew, ErrInvalidArgument)
	}
	n := len(data)
	if o := NewOptions(opts...); n == 0 || n > o.maxOrder {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxNew, n, ErrInvalidSize)
	}
	for i, src := range data {
		if len(src) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w", ctxNew, i, len(src), n, ErrDimensionMismatch)
		}
	}

	rows := make([]*vector.Vector[T], n)
	for i, src := range data {
		row, err := vector.FromSliceOf(ar, src, vector.WithMaxLength(n))
		if err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
		rows[i] = row.Pin()
	}

	return &Matrix[T]{rows: rows, ar: ar}, nil
}

// Clone returns an independent deep copy: every row is duplicated.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone().Pin()
	}

	return &Matrix[T]{rows: rows, ar: m.ar}
}

// Take moves src's rows into a new matrix without copying them.
// src is left with Order() == 0 and shares nothing with the result.
// Errors: ErrInvalidArgument when src is nil.
func Take[T any](src *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(ctxTake, err)
	}

	out := &Matrix[T]{rows: src.rows, ar: src.ar}
	src.rows = nil

	return out, nil
}

// Assign makes m a deep copy of src.
//
// Implementation:
//   - Stage 1: nil source fails; self-assignment is a no-op.
//   - Stage 2: equal orders copy row by row into the existing rows.
//   - Stage 3: different orders replace the row sequence with clones of
//     src's rows, so m takes src's order.
//
// m is left untouched when an error is returned.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	if m.ar == nil {
		m.ar = src.ar
	}
	if len(m.rows) != len(src.rows) {
		m.rows = src.Clone().rows

		return nil
	}
	for i := range m.rows {
		// same order, so row lengths match and Assign cannot fail
		if err := m.rows[i].Assign(src.rows[i]); err != nil {
			return matrixErrorf(ctxAssign, err)
		}
	}

	return nil
}

// MoveAssign exchanges the row sequences of m and src in O(1); src ends
// up holding m's previous rows.
func (m *Matrix[T]) MoveAssign(src *Matrix[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxMoveAssign, err)
	}
	m.rows, src.rows = src.rows, m.rows
	m.ar, src.ar = src.ar, m.ar

	return nil
}

// Order returns the shared row/column count. A nil matrix has order 0.
func (m *Matrix[T]) Order() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Arithmetic returns the element capability set m was built with.
func (m *Matrix[T]) Arithmetic() element.Arithmetic[T] { return m.ar }

// Row returns row i itself, not a copy. Writes through the returned
// vector change m; its own At/Set are bounds-checked again, so
// Row(i) followed by At(j) composes both checks.
// Errors: ErrIndexOutOfRange unless 0 <= i < Order().
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if err := ValidateIndex(i, len(m.rows)); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, err)
	}

	return m.rows[i], nil
}

// At returns the cell (i, j).
// Errors: ErrIndexOutOfRange when either index is outside [0, Order()).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := ValidateIndex(i, len(m.rows)); err != nil {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, err)
	}
	x, err := m.rows[i].At(j)
	if err != nil {
		return x, cellErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// Set stores x at (i, j).
// Errors: ErrIndexOutOfRange when either index is outside [0, Order()).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := ValidateIndex(i, len(m.rows)); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	if err := m.rows[i].Set(j, x); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Fill sets every cell to x.
func (m *Matrix[T]) Fill(x T) {
	for _, r := range m.rows {
		r.Fill(x)
	}
}

// Values returns a row-major copy of the cells as [][]T.
func (m *Matrix[T]) Values() [][]T {
	out := make([][]T, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}

// String renders the matrix as WriteText does: one line per row.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_ = m.WriteText(&b) // strings.Builder never fails

	return b.String()
}

// zero returns the additive identity, or T's zero value without a
// capability set.
func (m *Matrix[T]) zero() T {
	if m.ar == nil {
		var z T
		return z
	}

	return m.ar.Zero()
}

// adopt wraps freshly computed rows (unshared, length n each) as a matrix
// with m's capability set.
func (m *Matrix[T]) adopt(rows []*vector.Vector[T]) *Matrix[T] {
	for _, r := range rows {
		r.Pin()
	}

	return &Matrix[T]{rows: rows, ar: m.ar}
}
