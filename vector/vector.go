// SPDX-License-Identifier: MIT

// Package vector - fixed-length generic vector with value semantics.
//
// Purpose:
//   - Own a contiguous buffer of exactly Len() elements.
//   - Make copies explicit: Clone and Assign deep-copy, Take and MoveAssign
//     transfer the buffer without copying.
//   - Check every index: At/Set return ErrIndexOutOfRange, never panic.
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n); Take/MoveAssign/Swap: O(1); At/Set: O(1).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dynmat/element"
)

// Vector is a fixed-length sequence of T.
//
// A vector emptied by Take is in the moved-from state: Len() == 0, every
// index is out of range, and it can be refilled with Assign. The zero
// value is empty too but carries no capability set, so scalar arithmetic
// on it panics; build vectors with New or NewOf.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data   []T                   // exclusively owned; len(data) is the length
	ar     element.Arithmetic[T] // element capability set
	pinned bool                  // length may not change (matrix rows)
}

var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a vector of n zero-valued built-in numbers.
// See NewOf for the validation rules.
func New[T element.Number](n int, opts ...Option) (*Vector[T], error) {
	return NewOf[T](element.Numeric[T]{}, n, opts...)
}

// NewOf creates a vector of n elements, each set to ar.Zero().
//
// Implementation:
//   - Stage 1: reject a nil capability set (ErrInvalidArgument).
//   - Stage 2: reject n <= 0 or n > max length (ErrInvalidSize).
//   - Stage 3: allocate and fill with the additive identity.
//
// Errors:
//   - ErrInvalidArgument, ErrInvalidSize. No vector is returned on error.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewOf[T any](ar element.Arithmetic[T], n int, opts ...Option) (*Vector[T], error) {
	if ar == nil {
		return nil, vectorErrorf(ctxNew, ErrInvalidArgument)
	}
	o := NewOptions(opts...)
	if n <= 0 || n > o.maxLength {
		return nil, indexErrorf(ctxNew, n, ErrInvalidSize)
	}

	data := make([]T, n)
	zero := ar.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Vector[T]{data: data, ar: ar}, nil
}

// FromBuffer deep-copies the first n elements of src.
func FromBuffer[T element.Number](src []T, n int, opts ...Option) (*Vector[T], error) {
	return FromBufferOf[T](element.Numeric[T]{}, src, n, opts...)
}

// FromSlice deep-copies all of src.
func FromSlice[T element.Number](src []T, opts ...Option) (*Vector[T], error) {
	return FromBufferOf[T](element.Numeric[T]{}, src, len(src), opts...)
}

// FromSliceOf deep-copies all of src using ar.
func FromSliceOf[T any](ar element.Arithmetic[T], src []T, opts ...Option) (*Vector[T], error) {
	return FromBufferOf(ar, src, len(src), opts...)
}

// FromBufferOf deep-copies the first n elements of src.
//
// Errors:
//   - ErrInvalidArgument when src or ar is nil, or len(src) < n.
//   - ErrInvalidSize when n is outside (0, max length].
//
// Later writes to src never reach the vector and vice versa.
func FromBufferOf[T any](ar element.Arithmetic[T], src []T, n int, opts ...Option) (*Vector[T], error) {
	if ar == nil || src == nil {
		return nil, vectorErrorf(ctxFromBuffer, ErrInvalidArgument)
	}
	o := NewOptions(opts...)
	if n <= 0 || n > o.maxLength {
		return nil, indexErrorf(ctxFromBuffer, n, ErrInvalidSize)
	}
	if len(src) < n {
		return nil, fmt.Errorf("Vector.%s: buffer holds %d of %d elements: %w", ctxFromBuffer, len(src), n, ErrInvalidArgument)
	}

	data := make([]T, n)
	copy(data, src[:n])

	return &Vector[T]{data: data, ar: ar}, nil
}

// Clone returns an independent deep copy. The copy is never pinned.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data, ar: v.ar}
}

// Take moves src's buffer into a new vector without copying.
// src is left in the empty state (Len() == 0) and shares nothing with
// the result.
//
// Errors:
//   - ErrInvalidArgument when src is nil.
//   - ErrDimensionMismatch when src is pinned (its length may not change).
func Take[T any](src *Vector[T]) (*Vector[T], error) {
	if src == nil {
		return nil, vectorErrorf(ctxTake, ErrInvalidArgument)
	}
	if src.pinned {
		return nil, vectorErrorf(ctxTake, ErrDimensionMismatch)
	}

	out := &Vector[T]{data: src.data, ar: src.ar}
	src.data = nil

	return out, nil
}

// Assign makes v a deep copy of src.
//
// Implementation:
//   - Stage 1: nil source fails; self-assignment is a no-op.
//   - Stage 2: on a length difference, replace the buffer with a fresh one
//     of src's length (pinned vectors refuse with ErrDimensionMismatch).
//   - Stage 3: copy the elements.
//
// v is left untouched when an error is returned.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxAssign, ErrInvalidArgument)
	}
	if v == src {
		return nil
	}
	if len(v.data) != len(src.data) {
		if v.pinned {
			return lengthErrorf(ctxAssign, len(v.data), len(src.data))
		}
		v.data = make([]T, len(src.data))
	}
	copy(v.data, src.data)
	if v.ar == nil {
		v.ar = src.ar
	}

	return nil
}

// MoveAssign exchanges the buffers of v and src, so src ends up holding
// v's previous contents. It is Swap with move-assignment naming.
func (v *Vector[T]) MoveAssign(src *Vector[T]) error {
	if err := Swap(v, src); err != nil {
		return vectorErrorf(ctxMoveAssign, err)
	}

	return nil
}

// Swap exchanges the contents of a and b in O(1).
// Pinned vectors only swap with vectors of the same length.
func Swap[T any](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrInvalidArgument
	}
	if a == b {
		return nil
	}
	if (a.pinned || b.pinned) && len(a.data) != len(b.data) {
		return fmt.Errorf("lengths %d and %d: %w", len(a.data), len(b.data), ErrDimensionMismatch)
	}
	a.data, b.data = b.data, a.data
	a.ar, b.ar = b.ar, a.ar

	return nil
}

// Pin fixes the length of v: later Assign, MoveAssign, Swap or Take calls
// that would change it fail with ErrDimensionMismatch. Element writes stay
// allowed. Matrices pin every row they own.
func (v *Vector[T]) Pin() *Vector[T] {
	v.pinned = true

	return v
}

// Pinned reports whether the length of v is fixed.
func (v *Vector[T]) Pinned() bool { return v.pinned }

// Len returns the number of elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Arithmetic returns the element capability set v was built with.
func (v *Vector[T]) Arithmetic() element.Arithmetic[T] { return v.ar }

// At returns the element at index i.
// Errors: ErrIndexOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, indexErrorf(ctxAt, i, ErrIndexOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i.
// Errors: ErrIndexOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf(ctxSet, i, ErrIndexOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements in order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// String renders the elements separated by single spaces, the same text
// WriteText produces.
func (v *Vector[T]) String() string {
	var b strings.Builder
	_ = v.WriteText(&b) // strings.Builder never fails

	return b.String()
}

// zero returns the additive identity, or T's zero value for the zero Vector.
func (v *Vector[T]) zero() T {
	if v.ar == nil {
		var z T
		return z
	}

	return v.ar.Zero()
}

// blank allocates an unpinned result vector of length n sharing v's
// capability set. Contents are left as Go zero values; callers overwrite
// every slot.
func (v *Vector[T]) blank(n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n), ar: v.ar}
}
