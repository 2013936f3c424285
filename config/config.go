// SPDX-License-Identifier: MIT

// Package config loads the size limits used when vectors and matrices are
// constructed from external input.
//
// A limits file is YAML:
//
//	max_vector_length: 1000000
//	max_matrix_order: 512
//
// Missing keys keep their defaults (vector.DefaultMaxLength,
// matrix.DefaultMaxOrder); unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// ErrInvalidLimit is returned when a configured limit is not positive.
var ErrInvalidLimit = errors.New("config: limits must be > 0")

// Limits holds the construction-time size bounds.
type Limits struct {
	MaxVectorLength int `yaml:"max_vector_length"`
	MaxMatrixOrder  int `yaml:"max_matrix_order"`
}

// Default returns the package defaults.
func Default() Limits {
	return Limits{
		MaxVectorLength: vector.DefaultMaxLength,
		MaxMatrixOrder:  matrix.DefaultMaxOrder,
	}
}

// Validate reports ErrInvalidLimit for a non-positive field.
func (l Limits) Validate() error {
	if l.MaxVectorLength <= 0 {
		return fmt.Errorf("max_vector_length %d: %w", l.MaxVectorLength, ErrInvalidLimit)
	}
	if l.MaxMatrixOrder <= 0 {
		return fmt.Errorf("max_matrix_order %d: %w", l.MaxMatrixOrder, ErrInvalidLimit)
	}

	return nil
}

// VectorOptions maps the limits onto vector constructor options.
func (l Limits) VectorOptions() []vector.Option {
	return []vector.Option{vector.WithMaxLength(l.MaxVectorLength)}
}

// MatrixOptions maps the limits onto matrix constructor options.
func (l Limits) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithMaxOrder(l.MaxMatrixOrder)}
}

// Load decodes limits from r over the defaults. An empty document yields
// the defaults.
func Load(r io.Reader) (Limits, error) {
	l := Default()
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Limits{}, fmt.Errorf("config: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}

	return l, nil
}

// LoadFile reads limits from the file at path.
func LoadFile(path string) (l Limits, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Limits{}, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return Load(f)
}
