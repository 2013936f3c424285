// SPDX-License-Identifier: MIT

// Package element defines the capability set an element type must offer
// to be stored in a vector.Vector or matrix.Matrix.
//
// Purpose:
//   - Give generic containers an explicit additive identity (Zero) instead
//     of relying on an untyped literal 0 that only some types accept.
//   - Keep arithmetic, equality and text conversion in one place so that
//     built-in numbers and library types (decimal.Decimal) share one API.
//
// Implementations:
//   - Numeric[T] for every integer and floating-point type (named types included).
//   - Decimal for github.com/shopspring/decimal values.
package element

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrParse is returned when a text token cannot be converted to the element
// type. The underlying parser error stays in the chain.
var ErrParse = errors.New("element: cannot parse token")

// Number is the set of built-in types served by Numeric.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic is the element type capability set.
//
// Every method must be pure: it may not retain or mutate its arguments.
// Zero must return the additive identity; accumulators are seeded with it.
type Arithmetic[T any] interface {
	// Zero returns the additive identity (also used as the default value).
	Zero() T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Equal reports whether a and b are equal under the type's own equality.
	Equal(a, b T) bool

	// Parse converts one whitespace-free token. Failures wrap ErrParse.
	Parse(s string) (T, error)

	// Format renders v as a single whitespace-free token.
	Format(v T) string
}

// parseErrorf wraps a parser failure with the offending token.
func parseErrorf(tok string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrParse, tok, err)
}
