// SPDX-License-Identifier: MIT

package element

import (
	"errors"
	"reflect"
	"strconv"
)

// errUnsupportedKind is unreachable for types admitted by Number.
var errUnsupportedKind = errors.New("unsupported kind")

// Numeric implements Arithmetic with Go's built-in operators.
//
// Parse and Format dispatch on the reflect.Kind of T, so named types such
// as `type Celsius float32` parse with the right bit size and an int8
// rejects "300" with strconv.ErrRange.
//
// Integer arithmetic wraps on overflow exactly like the operators do.
type Numeric[T Number] struct{}

// Compile-time assertions for a few representative instantiations.
var (
	_ Arithmetic[int]     = Numeric[int]{}
	_ Arithmetic[uint8]   = Numeric[uint8]{}
	_ Arithmetic[float64] = Numeric[float64]{}
)

// Zero returns T(0).
func (Numeric[T]) Zero() T { return 0 }

// Add returns a + b.
func (Numeric[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Numeric[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Numeric[T]) Mul(a, b T) T { return a * b }

// Equal uses ==, so NaN never equals NaN.
func (Numeric[T]) Equal(a, b T) bool { return a == b }

// Parse converts a decimal token (integers) or any strconv.ParseFloat
// syntax (floats) into T.
func (Numeric[T]) Parse(s string) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	bits := rv.Type().Bits()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return out, parseErrorf(s, err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return out, parseErrorf(s, err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return out, parseErrorf(s, err)
		}
		rv.SetFloat(f)
	default:
		return out, parseErrorf(s, errUnsupportedKind)
	}

	return out, nil
}

// Format renders v in the shortest form that Parse reads back exactly.
func (Numeric[T]) Format(v T) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}

	return ""
}
