// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/warmup/averages"
	"github.com/katalvlaran/warmup/internal/pyfmt"
	"github.com/spf13/cobra"
)

const averagesPrompt = "Enter two values: "

func newAveragesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "averages [a b]",
		Short: "Arithmetic mean, geometric mean and root mean square of two integers",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := inputLine(cmd, args, averagesPrompt)
			if err != nil {
				return err
			}
			v, err := parseInts(line, 2)
			if err != nil {
				return err
			}
			s, err := averages.Summarize(v[0], v[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "The arithmetic mean: ", pyfmt.Float(s.Arithmetic))
			fmt.Fprintln(out, "The geometric mean: ", pyfmt.Float(s.Geometric))
			fmt.Fprintln(out, "The root mean square: ", pyfmt.Float(s.RMS))

			return nil
		},
	}
}
