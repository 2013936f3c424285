// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/dynmat/cmd"

func main() {
	cmd.Execute()
}
