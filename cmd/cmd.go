// SPDX-License-Identifier: MIT

// Package cmd is the root of the dynmat command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/cmd/flags"
	"github.com/katalvlaran/dynmat/cmd/mat"
	"github.com/katalvlaran/dynmat/cmd/vec"
)

// CreateCmd creates the root command with every subcommand attached.
func CreateCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dynmat",
		Short: "dynmat does vector and square matrix arithmetic on text files",
		Long: `dynmat reads dynamically sized vectors and square matrices from text
files and applies element-wise, scalar and product operations to them.
Elements are int64, float64 or arbitrary-precision decimals (--type).`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.Register(root.PersistentFlags())
	root.AddCommand(vec.CreateCmd())
	root.AddCommand(mat.CreateCmd())

	return root
}

// Execute runs the command tree against os.Args. This is called by main.main().
func Execute() {
	root := CreateCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
