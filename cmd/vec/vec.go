// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/cmd/files"
	"github.com/katalvlaran/dynmat/cmd/flags"
	"github.com/katalvlaran/dynmat/element"
	"github.com/katalvlaran/dynmat/vector"
)

const byFlag = "by"

// CreateCmd creates the vec command and its operation subcommands.
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vec",
		Short: "Vector arithmetic on files",
		Long: `Vector arithmetic on files. A vector file holds the length
followed by the elements, whitespace-separated. Use - for stdin.`,
	}
	cmd.AddCommand(
		binary("add", "Element-wise sum of two vectors",
			dispatch(runAdd[int64], runAdd[float64], runAdd[decimal.Decimal])),
		binary("sub", "Element-wise difference of two vectors",
			dispatch(runSub[int64], runSub[float64], runSub[decimal.Decimal])),
		binary("dot", "Dot product of two vectors",
			dispatch(runDot[int64], runDot[float64], runDot[decimal.Decimal])),
		binary("eq", "Report whether two vectors are equal",
			dispatch(runEq[int64], runEq[float64], runEq[decimal.Decimal])),
		scalar("scale", "Multiply every element by a scalar",
			dispatch(runScale[int64], runScale[float64], runScale[decimal.Decimal])),
		scalar("shift", "Add a scalar to every element",
			dispatch(runShift[int64], runShift[float64], runShift[decimal.Decimal])),
		scalar("unshift", "Subtract a scalar from every element",
			dispatch(runUnshift[int64], runUnshift[float64], runUnshift[decimal.Decimal])),
	)

	return cmd
}

type runE = func(*cobra.Command, []string) error

func binary(use, short string, fn runE) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE:  fn,
	}
}

func scalar(use, short string, fn runE) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " A --by X",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE:  fn,
	}
	cmd.Flags().String(byFlag, "", "scalar operand, parsed as the element type")
	_ = cmd.MarkFlagRequired(byFlag)

	return cmd
}

// dispatch picks the instantiation matching --type.
func dispatch(fi func(run[int64]) error, ff func(run[float64]) error, fd func(run[decimal.Decimal]) error) runE {
	return func(cmd *cobra.Command, args []string) error {
		s, err := flags.FromCommand(cmd)
		if err != nil {
			return err
		}
		s.Logf("vec %s: type %s, %d operand file(s)", cmd.Name(), s.Kind, len(args))

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

// run carries one typed invocation.
type run[T any] struct {
	cmd  *cobra.Command
	s    flags.Settings
	ar   element.Arithmetic[T]
	args []string
}

func (r run[T]) read(i int) (*vector.Vector[T], error) {
	v, err := files.ReadVector(r.cmd, r.ar, r.args[i], r.s.Limits.VectorOptions()...)
	if err != nil {
		return nil, err
	}
	r.s.Logf("read %s: length %d", r.args[i], v.Len())

	return v, nil
}

func (r run[T]) pair() (*vector.Vector[T], *vector.Vector[T], error) {
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

func (r run[T]) scalar() (T, error) {
	var x T
	by, err := r.cmd.Flags().GetString(byFlag)
	if err != nil {
		return x, err
	}
	if x, err = r.ar.Parse(by); err != nil {
		return x, fmt.Errorf("--%s: %w", byFlag, err)
	}

	return x, nil
}

func (r run[T]) emit(v *vector.Vector[T]) error {
	return files.Emit(r.cmd, r.s.Output, func(w io.Writer) error {
		return files.WriteVector(w, v)
	})
}

func runAdd[T any](r run[T]) error {
	a, b, err := r.pair()
	if err != nil {
		return err
	}
	c, err := a.Add(b)
	if err != nil {
		return err
	}

	return r.emit(c)
}

func runSub[T any](r run[T]) error {
	a, b, err := r.pair()
	if err != nil {
		return err
	}
	c, err := a.Sub(b)
	if err != nil {
		return err
	}

	return r.emit(c)
}

func runDot[T any](r run[T]) error {
	a, b, err := r.pair()
	if err != nil {
		return err
	}
	x, err := a.Dot(b)
	if err != nil {
		return err
	}

	return files.Emit(r.cmd, r.s.Output, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, r.ar.Format(x))
		return err
	})
}

func runEq[T any](r run[T]) error {
	a, b, err := r.pair()
	if err != nil {
		return err
	}

	return files.Emit(r.cmd, r.s.Output, func(w io.Writer) error {
		return files.WriteVerdict(w, a.Equal(b))
	})
}

func runScalar[T any](r run[T], fn func(*vector.Vector[T], T) *vector.Vector[T]) error {
	x, err := r.scalar()
	if err != nil {
		return err
	}
	a, err := r.read(0)
	if err != nil {
		return err
	}

	return r.emit(fn(a, x))
}

func runScale[T any](r run[T]) error {
	return runScalar(r, (*vector.Vector[T]).MulScalar)
}

func runShift[T any](r run[T]) error {
	return runScalar(r, (*vector.Vector[T]).AddScalar)
}

func runUnshift[T any](r run[T]) error {
	return runScalar(r, (*vector.Vector[T]).SubScalar)
}
