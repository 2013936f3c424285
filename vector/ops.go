// SPDX-License-Identifier: MIT

// Package vector: comparison and arithmetic.
// Every operation allocates its result and leaves both operands unchanged.
// Length checks run before the first write, so a failing call has no
// observable effect.

package vector

// Equal reports whether v and o have the same length and pairwise equal
// elements under the element type's equality. Two nil vectors are equal.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v == o {
		return true
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if !v.ar.Equal(v.data[i], o.data[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }

// AddScalar returns a new vector with out[i] = v[i] + c.
func (v *Vector[T]) AddScalar(c T) *Vector[T] {
	return v.mapScalar(c, v.ar.Add)
}

// SubScalar returns a new vector with out[i] = v[i] - c.
func (v *Vector[T]) SubScalar(c T) *Vector[T] {
	return v.mapScalar(c, v.ar.Sub)
}

// MulScalar returns a new vector with out[i] = v[i] * c.
func (v *Vector[T]) MulScalar(c T) *Vector[T] {
	return v.mapScalar(c, v.ar.Mul)
}

// Add returns the elementwise sum v + o.
// Errors: ErrInvalidArgument for a nil operand, ErrDimensionMismatch for
// unequal lengths.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if o == nil {
		return nil, vectorErrorf(ctxAdd, ErrInvalidArgument)
	}
	if len(v.data) != len(o.data) {
		return nil, lengthErrorf(ctxAdd, len(v.data), len(o.data))
	}

	return v.zip(o, v.ar.Add), nil
}

// Sub returns the elementwise difference v - o.
// Errors: as Add.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if o == nil {
		return nil, vectorErrorf(ctxSub, ErrInvalidArgument)
	}
	if len(v.data) != len(o.data) {
		return nil, lengthErrorf(ctxSub, len(v.data), len(o.data))
	}

	return v.zip(o, v.ar.Sub), nil
}

// Dot returns Σ v[i]*o[i], accumulated from the element type's Zero in
// index order.
//
// Errors:
//   - ErrInvalidArgument for a nil operand.
//   - ErrDimensionMismatch for unequal lengths.
//
// Complexity: O(n) time, O(1) extra space.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	acc := v.zero()
	if o == nil {
		return acc, vectorErrorf(ctxDot, ErrInvalidArgument)
	}
	if len(v.data) != len(o.data) {
		return acc, lengthErrorf(ctxDot, len(v.data), len(o.data))
	}
	for i := range v.data {
		acc = v.ar.Add(acc, v.ar.Mul(v.data[i], o.data[i]))
	}

	return acc, nil
}

// mapScalar applies op(v[i], c) into a fresh vector.
func (v *Vector[T]) mapScalar(c T, op func(a, b T) T) *Vector[T] {
	out := v.blank(len(v.data))
	for i, x := range v.data {
		out.data[i] = op(x, c)
	}

	return out
}

// zip applies op(v[i], o[i]) into a fresh vector; lengths are checked by
// the caller.
func (v *Vector[T]) zip(o *Vector[T], op func(a, b T) T) *Vector[T] {
	out := v.blank(len(v.data))
	for i := range v.data {
		out.data[i] = op(v.data[i], o.data[i])
	}

	return out
}
