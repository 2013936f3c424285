// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/textio"
	"github.com/katalvlaran/dynmat/vector"
)

// ExampleMatrix_Mul reads two matrices from text and multiplies them.
func ExampleMatrix_Mul() {
	in := textio.NewScanner(strings.NewReader(`
		1 2
		3 4

		0 1
		1 0
	`))
	a, _ := matrix.New[int](2)
	b, _ := matrix.New[int](2)
	_ = a.ReadText(in)
	_ = b.ReadText(in)

	p, _ := a.Mul(b)
	fmt.Print(p)
	// Output:
	// 2 1
	// 4 3
}

// ExampleMatrix_MulVector applies a matrix to a vector.
func ExampleMatrix_MulVector() {
	m, _ := matrix.FromRows([][]float64{{2, 0}, {0, 0.5}})
	v, _ := vector.FromSlice([]float64{3, 4})

	out, _ := m.MulVector(v)
	fmt.Println(out)

	long, _ := vector.New[float64](3)
	_, err := m.MulVector(long)
	fmt.Println(err)
	// Output:
	// 6 2
	// Matrix.MulVector: ValidateVecLen: 3, want 2: dimension mismatch
}
