// Package vector provides Vector[T], a fixed-length, heap-backed sequence
// of a generic element type with value semantics.
//
// The vector package provides:
//
//   - Construction with size validation (New, NewOf, FromSlice, FromBuffer).
//   - Explicit copy (Clone, Assign) and ownership transfer (Take, MoveAssign, Swap).
//   - Bounds-checked element access (At, Set); there is no unchecked accessor.
//   - Scalar and elementwise arithmetic plus the dot product.
//   - Whitespace-separated text input and output.
//
// Element arithmetic comes from an element.Arithmetic[T]; New and the other
// constructors without the "Of" suffix pick element.Numeric for built-in
// numbers.
package vector
