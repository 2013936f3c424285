// SPDX-License-Identifier: MIT

// Package flags holds the persistent flags shared by every dynmat command
// and resolves them into Settings.
package flags

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/dynmat/config"
)

// Flag names.
const (
	TypeFlag    = "type"
	ConfigFlag  = "config"
	OutputFlag  = "output"
	VerboseFlag = "verbose"
	NoColorFlag = "no-color"
)

// Element type names accepted by --type.
const (
	Int     = "int"
	Float   = "float"
	Decimal = "decimal"
)

var kinds = []string{Int, Float, Decimal}

// KindFlag selects the element type.
type KindFlag string

var _ pflag.Value = (*KindFlag)(nil)

func (k KindFlag) String() string { return string(k) }

// Set implements pflag.Value.
func (k *KindFlag) Set(v string) error {
	for _, name := range kinds {
		if v == name {
			*k = KindFlag(v)
			return nil
		}
	}

	return fmt.Errorf("unknown element type %q, want one of %s", v, strings.Join(kinds, ", "))
}

// Type implements pflag.Value.
func (k KindFlag) Type() string { return strings.Join(kinds, "|") }

// Register adds the persistent flags to fs.
func Register(fs *pflag.FlagSet) {
	kind := KindFlag(Int)
	fs.VarP(&kind, TypeFlag, "t", "element type")
	fs.StringP(ConfigFlag, "c", "", "YAML file with max_vector_length / max_matrix_order")
	fs.StringP(OutputFlag, "o", "-", "output file, - for stdout")
	fs.BoolP(VerboseFlag, "v", false, "print diagnostics to stderr")
	fs.Bool(NoColorFlag, false, "disable colored output")
}

// Settings is the resolved flag state of one invocation.
type Settings struct {
	Kind   string
	Limits config.Limits
	Output string
	Log    io.Writer // diagnostics; io.Discard unless --verbose
}

// Logf writes one diagnostic line.
func (s Settings) Logf(format string, args ...interface{}) {
	fmt.Fprintf(s.Log, "dynmat: "+format+"\n", args...)
}

// FromCommand resolves the persistent flags of cmd. It also applies
// --no-color globally, as color output is decided once per process.
func FromCommand(cmd *cobra.Command) (Settings, error) {
	fs := cmd.Flags()

	s := Settings{Kind: Int, Limits: config.Default(), Log: io.Discard}
	if f := fs.Lookup(TypeFlag); f != nil {
		s.Kind = f.Value.String()
	}

	var err error
	if s.Output, err = fs.GetString(OutputFlag); err != nil {
		return Settings{}, err
	}
	verbose, err := fs.GetBool(VerboseFlag)
	if err != nil {
		return Settings{}, err
	}
	if verbose {
		s.Log = cmd.ErrOrStderr()
	}
	noColor, err := fs.GetBool(NoColorFlag)
	if err != nil {
		return Settings{}, err
	}
	if noColor {
		color.NoColor = true
	}

	path, err := fs.GetString(ConfigFlag)
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		if s.Limits, err = config.LoadFile(path); err != nil {
			return Settings{}, fmt.Errorf("--%s %s: %w", ConfigFlag, path, err)
		}
		s.Logf("limits from %s: vector length <= %d, matrix order <= %d",
			path, s.Limits.MaxVectorLength, s.Limits.MaxMatrixOrder)
	}

	return s, nil
}
