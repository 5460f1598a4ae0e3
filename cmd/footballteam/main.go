// SPDX-License-Identifier: MIT

// Command footballteam reads a roster from stdin and prints the most
// effective balanced team.
package main

import (
	"os"

	"github.com/katalvlaran/footballteam/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
