// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/warmup/piglatin"
	"github.com/spf13/cobra"
)

const pigLatinPrompt = "Enter a Name: "

func newPigLatinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "piglatin [name...]",
		Short: "Translate a name into simplified Pig Latin",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := inputLine(cmd, args, pigLatinPrompt)
			if err != nil {
				return err
			}
			out, err := piglatin.Translate(line)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
