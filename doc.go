// Package dynmat is a small toolkit of dynamically sized vectors and square
// matrices over any element type that brings its own arithmetic.
//
// What is in the box?
//
//	• Vectors: fixed length chosen at run time, element-wise and scalar
//	  arithmetic, dot product, explicit copy and move operations
//	• Square matrices: rows of vectors, element-wise sums, scalar scaling,
//	  matrix × vector and matrix × matrix products
//	• Element types: every Go integer and float, plus exact decimals
//	• Text I/O: whitespace-separated streams in, single-space rows out
//
// Packages:
//
//	element/   the arithmetic capability set (Numeric, Decimal)
//	vector/    Vector[T] and its operations
//	matrix/    Matrix[T] built from pinned vector rows
//	textio/    whitespace tokenizer shared by ReadText
//	config/    size limits from YAML
//	gonumconv/ float64 conversions to and from gonum's mat types
//	cmd/       the dynmat command line tool
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	v, _ := vector.FromSlice([]int{5, 6})
//	w, _ := m.MulVector(v) // [17 39]
//
//	go install github.com/katalvlaran/dynmat/cmd/dynmat@latest
package dynmat
