// SPDX-License-Identifier: MIT

// Package vector: functional configuration for constructors.
// Options only affect validation at construction time; a built vector
// carries no configuration.

package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLength is the length to request when the caller has no
	// better choice.
	DefaultLength = 1

	// DefaultMaxLength is the largest length a constructor accepts.
	DefaultMaxLength = 100_000_000
)

const panicMaxLengthInvalid = "vector: WithMaxLength: max must be > 0"

// Option mutates Options. Safe to apply repeatedly; the last one wins.
type Option func(*Options)

// Options is the effective constructor configuration.
type Options struct {
	maxLength int // > 0; DefaultMaxLength
}

// WithMaxLength overrides DefaultMaxLength.
// Panics if max <= 0 (programmer error).
func WithMaxLength(max int) Option {
	if max <= 0 {
		panic(panicMaxLengthInvalid)
	}

	return func(o *Options) { o.maxLength = max }
}

// MaxLength reports the configured upper bound.
func (o Options) MaxLength() int { return o.maxLength }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{maxLength: DefaultMaxLength}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
