// SPDX-License-Identifier: MIT

package element

import "github.com/shopspring/decimal"

// Decimal implements Arithmetic for arbitrary-precision decimals.
// Text round trips are exact, which makes it the natural choice when
// serialized results must compare equal after reading them back.
type Decimal struct{}

var _ Arithmetic[decimal.Decimal] = Decimal{}

// Zero returns decimal.Zero.
func (Decimal) Zero() decimal.Decimal { return decimal.Zero }

// Add returns a + b.
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// Sub returns a - b.
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }

// Mul returns a * b.
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Equal compares by value, so 1.0 equals 1.
func (Decimal) Equal(a, b decimal.Decimal) bool { return a.Equal(b) }

// Parse accepts plain and scientific notation ("1.25", "-3e2").
func (Decimal) Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, parseErrorf(s, err)
	}

	return d, nil
}

// Format renders d without exponent.
func (Decimal) Format(d decimal.Decimal) string { return d.String() }
