// SPDX-License-Identifier: MIT

// Package cmdtest runs cobra commands in tests.
package cmdtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// Run executes cmd with args and returns what it wrote to stdout.
// The test fails if the command returns an error.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	out, errOut, err := exec(cmd, "", args)
	require.NoError(t, err, "stderr: %s", errOut)

	return out
}

// RunErr executes cmd with args and returns its error, which must be non-nil.
func RunErr(t *testing.T, cmd *cobra.Command, args []string) error {
	t.Helper()
	out, _, err := exec(cmd, "", args)
	require.Error(t, err, "stdout: %s", out)

	return err
}

// RunStderr executes cmd with args and returns stdout and stderr.
func RunStderr(t *testing.T, cmd *cobra.Command, args []string) (stdout, stderr []byte) {
	t.Helper()
	out, errOut, err := exec(cmd, "", args)
	require.NoError(t, err, "stderr: %s", errOut)

	return out, errOut
}

// RunInput is Run with stdin.
func RunInput(t *testing.T, cmd *cobra.Command, stdin string, args []string) []byte {
	t.Helper()
	out, errOut, err := exec(cmd, stdin, args)
	require.NoError(t, err, "stderr: %s", errOut)

	return out
}

func exec(cmd *cobra.Command, stdin string, args []string) ([]byte, []byte, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.Bytes(), errOut.Bytes(), err
}
