// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/cmd/files"
	"github.com/katalvlaran/dynmat/cmd/flags"
	"github.com/katalvlaran/dynmat/element"
	"github.com/katalvlaran/dynmat/matrix"
)

const byFlag = "by"

// CreateCmd creates the mat command and its operation subcommands.
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mat",
		Short: "Square matrix arithmetic on files",
		Long: `Square matrix arithmetic on files. A matrix file holds the order n
followed by n rows of n elements, whitespace-separated. Use - for stdin.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add A B",
			Short: "Element-wise sum of two matrices",
			Args:  cobra.ExactArgs(2),
			RunE:  dispatch(runAdd[int64], runAdd[float64], runAdd[decimal.Decimal]),
		},
		&cobra.Command{
			Use:   "sub A B",
			Short: "Element-wise difference of two matrices",
			Args:  cobra.ExactArgs(2),
			RunE:  dispatch(runSub[int64], runSub[float64], runSub[decimal.Decimal]),
		},
		&cobra.Command{
			Use:   "mul A B",
			Short: "Matrix product A×B",
			Args:  cobra.ExactArgs(2),
			RunE:  dispatch(runMul[int64], runMul[float64], runMul[decimal.Decimal]),
		},
		&cobra.Command{
			Use:   "eq A B",
			Short: "Report whether two matrices are equal",
			Args:  cobra.ExactArgs(2),
			RunE:  dispatch(runEq[int64], runEq[float64], runEq[decimal.Decimal]),
		},
		&cobra.Command{
			Use:   "apply M V",
			Short: "Multiply matrix M by vector file V",
			Args:  cobra.ExactArgs(2),
			RunE:  dispatch(runApply[int64], runApply[float64], runApply[decimal.Decimal]),
		},
		scaleCmd(),
	)

	return cmd
}

func scaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale A --by X",
		Short: "Multiply every element by a scalar",
		Args:  cobra.ExactArgs(1),
		RunE:  dispatch(runScale[int64], runScale[float64], runScale[decimal.Decimal]),
	}
	cmd.Flags().String(byFlag, "", "scalar operand, parsed as the element type")
	_ = cmd.MarkFlagRequired(byFlag)

	return cmd
}

// dispatch picks the instantiation matching --type.
func dispatch(fi func(run[int64]) error, ff func(run[float64]) error, fd func(run[decimal.Decimal]) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := flags.FromCommand(cmd)
		if err != nil {
			return err
		}
		s.Logf("mat %s: type %s, %d operand file(s)", cmd.Name(), s.Kind, len(args))

		switch s.Kind {
		case flags.Int:
			return fi(run[int64]{cmd: cmd, s: s, ar: element.Numeric[int64]{}, args: args})
		case flags.Float:
			return ff(run[float64]{cmd: cmd, s: s, ar: element.Numeric[float64]{}, args: args})
		case flags.Decimal:
			return fd(run[decimal.Decimal]{cmd: cmd, s: s, ar: element.Decimal{}, args: args})
		}

		return fmt.Errorf("unsupported element type %q", s.Kind)
	}
}

type run[T any] struct {
	cmd  *cobra.Command
	s    flags.Settings
	ar   element.Arithmetic[T]
	args []string
}

func (r run[T]) read(i int) (*matrix.Matrix[T], error) {
	m, err := files.ReadMatrix(r.cmd, r.ar, r.args[i], r.s.Limits.MatrixOptions()...)
	if err != nil {
		return nil, err
	}
	r.s.Logf("read %s: order %d", r.args[i], m.Order())

	return m, nil
}

func (r run[T]) pair() (*matrix.Matrix[T], *matrix.Matrix[T], error) {
	a, err := r.read(0)
	if err != nil {
		return nil, nil, err
	}
	b, err := r.read(1)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (r run[T]) emit(m *matrix.Matrix[T]) error {
	return files.Emit(r.cmd, r.s.Output, func(w io.Writer) error {
		return files.WriteMatrix(w, m)
	})
}

func runBinary[T any](r run[T], fn func(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error)) error {
	a, b, err := r.pair()
	if err != nil {
		return err
	}
	c, err := fn(a, b)
	if err != nil {
		return err
	}

	return r.emit(c)
}

func runAdd[T any](r run[T]) error { return runBinary(r, (*matrix.Matrix[T]).Add) }

func runSub[T any](r run[T]) error { return runBinary(r, (*matrix.Matrix[T]).Sub) }

func runMul[T any](r run[T]) error { return runBinary(r, (*matrix.Matrix[T]).Mul) }

func runEq[T any](r run[T]) error {
	a, b, err := r.pair()
	if err != nil {
		return err
	}

	return files.Emit(r.cmd, r.s.Output, func(w io.Writer) error {
		return files.WriteVerdict(w, a.Equal(b))
	})
}

func runApply[T any](r run[T]) error {
	m, err := r.read(0)
	if err != nil {
		return err
	}
	v, err := files.ReadVector(r.cmd, r.ar, r.args[1], r.s.Limits.VectorOptions()...)
	if err != nil {
		return err
	}
	out, err := m.MulVector(v)
	if err != nil {
		return err
	}

	return files.Emit(r.cmd, r.s.Output, func(w io.Writer) error {
		return files.WriteVector(w, out)
	})
}

func runScale[T any](r run[T]) error {
	by, err := r.cmd.Flags().GetString(byFlag)
	if err != nil {
		return err
	}
	x, err := r.ar.Parse(by)
	if err != nil {
		return fmt.Errorf("--%s: %w", byFlag, err)
	}
	m, err := r.read(0)
	if err != nil {
		return err
	}

	return r.emit(m.MulScalar(x))
}
