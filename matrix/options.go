// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
//
// Notes:
//   - Options are consulted only when a matrix is created; the order of a
//     built matrix never changes except through Assign/MoveAssign/Take.
//   - Rows are built with vector.WithMaxLength(order), so a matrix limit
//     above vector.DefaultMaxLength still produces valid rows.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the order to request when the caller has no better choice.
	DefaultOrder = 1

	// DefaultMaxOrder is the largest order a constructor accepts.
	DefaultMaxOrder = 10_000
)

const panicMaxOrderInvalid = "matrix: WithMaxOrder: max must be > 0"

// Option mutates Options. Safe to apply repeatedly; the last one wins.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxOrder int // > 0; DefaultMaxOrder
}

// WithMaxOrder overrides DefaultMaxOrder.
// Panics if max <= 0.
func WithMaxOrder(max int) Option {
	if max <= 0 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = max }
}

// MaxOrder reports the configured upper bound.
func (o Options) MaxOrder() int { return o.maxOrder }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{maxOrder: DefaultMaxOrder}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
