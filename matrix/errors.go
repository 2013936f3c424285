// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The matrix package shares its sentinels with the vector package: a
// failing m.At(i, j) reports ErrIndexOutOfRange whether row i or column j
// was out of range, and one errors.Is check covers both.
// Every message is wrapped with "Matrix.<method>" context at the detection
// site; callers match with errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

var (
	// ErrInvalidSize is returned when a requested order is <= 0 or above
	// the configured maximum.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrInvalidArgument is returned for a nil operand, capability set or
	// token stream.
	ErrInvalidArgument = vector.ErrInvalidArgument

	// ErrIndexOutOfRange is returned for a row or column outside [0, Order()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrDimensionMismatch is returned when operand orders (or a vector
	// length) differ where they must match.
	ErrDimensionMismatch = vector.ErrDimensionMismatch
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxTake       = "Take"
	ctxAssign     = "Assign"
	ctxMoveAssign = "MoveAssign"
	ctxRow        = "Row"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxAdd        = "Add"
	ctxSub        = "Sub"
	ctxMul        = "Mul"
	ctxMulVector  = "MulVector"
	ctxReadText   = "ReadText"
	ctxWriteText  = "WriteText"
)

// matrixErrorf wraps err with the method tag.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// cellErrorf wraps err with the method tag and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
