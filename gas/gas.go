// SPDX-License-Identifier: MIT

// Package gas converts a quantity of gasoline in US gallons into liters, the
// barrels of crude oil needed to produce it, and its retail price.
//
// Usage:
//
//	c := gas.Convert(10)
//	fmt.Printf("%.2f\n", c.Price) // 36.50
//
//	c = gas.Convert(10, gas.WithPricePerGallon(4.10))
package gas

import "math"

// cents is the price rounding scale (two decimal places).
const cents = 100

// Conversion is the result of Convert.
type Conversion struct {
	Gallons float64 // input quantity
	Liters  float64 // Gallons · liters per gallon
	Barrels float64 // Gallons / gallons per barrel
	Price   float64 // Gallons · price per gallon, rounded to cents
}

// Convert computes the Conversion of gallons under the configured rates.
// Negative quantities are converted as-is.
func Convert(gallons float64, opts ...Option) Conversion {
	o := gatherOptions(opts...)

	return Conversion{
		Gallons: gallons,
		Liters:  gallons * o.litersPerGallon,
		Barrels: gallons / o.gallonsPerBarrel,
		Price:   roundCents(gallons * o.pricePerGallon),
	}
}

// roundCents rounds half away from zero to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*cents) / cents
}
