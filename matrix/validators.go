// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide one source of truth for operand checks shared by Add, Sub,
//    Mul, MulVector and Equal.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Note:
//  - Composite validators run in a fixed sequence: NotNil → Order.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidArgument)
	}

	return nil
}

// ValidateSameOrder ensures a and b are non-nil and share their order.
// Complexity: O(1).
func ValidateSameOrder[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Order() != b.Order() {
		return validatorErrorf(fmt.Sprintf("ValidateSameOrder: %d and %d", a.Order(), b.Order()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen[T any](v *vector.Vector[T], n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrInvalidArgument)
	}
	if v.Len() != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %d, want %d", v.Len(), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}

	return nil
}
