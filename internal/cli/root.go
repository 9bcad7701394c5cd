// SPDX-License-Identifier: MIT

// Package cli wires the exercises into a cobra command tree. Every
// subcommand prompts on stdout, reads one line from stdin, and prints its
// results; positional arguments, when given, replace the prompt.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ErrBadInput is returned when an input line cannot be parsed.
var ErrBadInput = errors.New("cli: bad input")

// NewRootCmd builds the warmup command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "warmup",
		Short:        "Beginner exercises: averages, gas conversion, pig latin, 2x2 matrix inverse",
		SilenceUsage: true,
	}
	root.AddCommand(
		newAveragesCmd(),
		newGasCmd(),
		newPigLatinCmd(),
		newMatrixCmd(),
	)

	return root
}

// inputLine returns args joined by spaces, or, when there are none, writes
// prompt and reads a single line without its line terminator.
func inputLine(cmd *cobra.Command, args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), prompt); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// parseInts parses exactly n whitespace-separated integers.
func parseInts(line string, n int) ([]int, error) {
	fields, err := splitN(line, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i, f := range fields {
		if out[i], err = strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("value %d %q is not an integer: %w", i+1, f, ErrBadInput)
		}
	}

	return out, nil
}

// parseFloats parses exactly n whitespace-separated real numbers.
func parseFloats(line string, n int) ([]float64, error) {
	fields, err := splitN(line, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i, f := range fields {
		if out[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("value %d %q is not a number: %w", i+1, f, ErrBadInput)
		}
	}

	return out, nil
}

func splitN(line string, n int) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d values, got %d: %w", n, len(fields), ErrBadInput)
	}

	return fields, nil
}
