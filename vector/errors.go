// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every public failure returns one of these sentinels wrapped with the
// method context ("Vector.At(3): index out of range"). Callers match with
// errors.Is. No method panics on user-triggered conditions.
//
// The matrix package re-exports the same values, so one errors.Is check
// works for a failure raised at either level of m.At(i, j).

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested length is <= 0 or above
	// the configured maximum.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidArgument is returned when a mandatory input (element
	// capability set, source buffer, operand, token stream) is nil or
	// shorter than the declared length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned for any index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch is returned when two operands must have equal
	// lengths and do not, or when an assignment would resize a pinned vector.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// method tags used in error wrappers
const (
	ctxNew        = "New"
	ctxFromBuffer = "FromBuffer"
	ctxTake       = "Take"
	ctxAssign     = "Assign"
	ctxMoveAssign = "MoveAssign"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxAdd        = "Add"
	ctxSub        = "Sub"
	ctxDot        = "Dot"
	ctxReadText   = "ReadText"
	ctxWriteText  = "WriteText"
)

// vectorErrorf attaches the method tag to a sentinel.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// indexErrorf attaches the method tag and the offending index.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// lengthErrorf reports two operand lengths for a mismatch.
func lengthErrorf(method string, a, b int) error {
	return fmt.Errorf("Vector.%s: lengths %d and %d: %w", method, a, b, ErrDimensionMismatch)
}
