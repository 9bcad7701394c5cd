// SPDX-License-Identifier: MIT

// Command warmup runs the beginner exercises:
//
//	warmup averages     # Enter two values: 4 9
//	warmup gas          # Enter a number of gallons of gasoline:10
//	warmup piglatin     # Enter a Name: Paul Laskowski
//	warmup matrix_fun   # Enter four values: 1 2 3 4
package main

import (
	"os"

	"github.com/katalvlaran/warmup/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
