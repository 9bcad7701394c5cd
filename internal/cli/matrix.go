// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/warmup/matrix"
	"github.com/spf13/cobra"
)

const matrixPrompt = "Enter four values: "

func newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "matrix_fun [a b c d]",
		Aliases: []string{"matrix"},
		Short:   "Print the 2x2 matrix ((a, b), (c, d)) and its inverse",
		Args:    cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := inputLine(cmd, args, matrixPrompt)
			if err != nil {
				return err
			}
			v, err := parseFloats(line, 4)
			if err != nil {
				return err
			}
			m := matrix.New(v[0], v[1], v[2], v[3])
			inv, err := matrix.Inverse(m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, m)
			fmt.Fprintln(out, inv)

			return nil
		},
	}
}
