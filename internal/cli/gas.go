// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warmup/gas"
	"github.com/katalvlaran/warmup/internal/pyfmt"
	"github.com/spf13/cobra"
)

const gasPrompt = "Enter a number of gallons of gasoline:"

type gasFlags struct {
	litersPerGallon  float64
	gallonsPerBarrel float64
	pricePerGallon   float64
}

// options validates the flags before handing them to the gas.WithX
// constructors, which panic on bad values.
func (f gasFlags) options() ([]gas.Option, error) {
	if !positive(f.litersPerGallon) {
		return nil, fmt.Errorf("--liters-per-gallon %v must be > 0: %w", f.litersPerGallon, ErrBadInput)
	}
	if !positive(f.gallonsPerBarrel) {
		return nil, fmt.Errorf("--gallons-per-barrel %v must be > 0: %w", f.gallonsPerBarrel, ErrBadInput)
	}
	if !positive(f.pricePerGallon) && f.pricePerGallon != 0 {
		return nil, fmt.Errorf("--price-per-gallon %v must be >= 0: %w", f.pricePerGallon, ErrBadInput)
	}

	return []gas.Option{
		gas.WithLitersPerGallon(f.litersPerGallon),
		gas.WithGallonsPerBarrel(f.gallonsPerBarrel),
		gas.WithPricePerGallon(f.pricePerGallon),
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func newGasCmd() *cobra.Command {
	var flags gasFlags

	cmd := &cobra.Command{
		Use:   "gas [gallons]",
		Short: "Convert gallons of gasoline to liters, barrels of oil and price",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			line, err := inputLine(cmd, args, gasPrompt)
			if err != nil {
				return err
			}
			fields, err := splitN(line, 1)
			if err != nil {
				return err
			}
			v, err := parseFloats(fields[0], 1)
			if err != nil {
				return err
			}
			if math.IsNaN(v[0]) || math.IsInf(v[0], 0) {
				return fmt.Errorf("gallons %q must be finite: %w", fields[0], ErrBadInput)
			}
			c := gas.Convert(v[0], opts...)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "The Number of gallons entered is:", fields[0])
			fmt.Fprintln(out, "Equivalent number of liters", pyfmt.Float(c.Liters))
			fmt.Fprintln(out, "Number of barrels of oil required to produce it: ", pyfmt.Float(c.Barrels))
			fmt.Fprintf(out, "Price: $%.2f\n", c.Price)

			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&flags.litersPerGallon, "liters-per-gallon", gas.DefaultLitersPerGallon, "liters in one gallon")
	f.Float64Var(&flags.gallonsPerBarrel, "gallons-per-barrel", gas.DefaultGallonsPerBarrel, "gallons of gasoline produced by one barrel of oil")
	f.Float64Var(&flags.pricePerGallon, "price-per-gallon", gas.DefaultPricePerGallon, "price of one gallon in US dollars")

	return cmd
}
