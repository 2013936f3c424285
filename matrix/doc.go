// Package matrix offers Matrix[T], a generic square matrix composed of
// owned vector.Vector rows.
//
// The matrix package provides:
//
//   - Construction with order validation (New, NewOf, FromRows).
//   - Deep copy (Clone, Assign) and row-ownership transfer (Take, MoveAssign).
//   - Bounds-checked row and cell access (Row, At, Set).
//   - Equality, matrix×scalar, matrix×vector, matrix±matrix, matrix×matrix.
//   - Row-per-line text input and output.
//
// Matrix operations decompose into row operations delegated to the vector
// package; they never expose vector-of-vector operations of their own.
//
// See the examples in this package for usage patterns.
package matrix
