// SPDX-License-Identifier: MIT

// Package gas: functional configuration for the gallon conversion rates.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values.

package gas

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLitersPerGallon is the US liquid gallon in liters.
	DefaultLitersPerGallon = 3.78541178

	// DefaultGallonsPerBarrel is the gasoline yield of one barrel of crude oil.
	DefaultGallonsPerBarrel = 19.5

	// DefaultPricePerGallon is the average retail price in US dollars.
	DefaultPricePerGallon = 3.65
)

// ---------- Internal panic messages ----------

const (
	panicLitersInvalid  = "gas: WithLitersPerGallon: rate must be finite and > 0"
	panicGallonsInvalid = "gas: WithGallonsPerBarrel: rate must be finite and > 0"
	panicPriceInvalid   = "gas: WithPricePerGallon: price must be finite and >= 0"
)

// ---------- Public option type ----------

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options stores the effective rates after applying Option setters.
type Options struct {
	litersPerGallon  float64 // DefaultLitersPerGallon
	gallonsPerBarrel float64 // DefaultGallonsPerBarrel
	pricePerGallon   float64 // DefaultPricePerGallon
}

// WithLitersPerGallon overrides the volume conversion rate.
// Panics when rate is not finite or not positive.
func WithLitersPerGallon(rate float64) Option {
	if !finite(rate) || rate <= 0 {
		panic(panicLitersInvalid)
	}

	return func(o *Options) { o.litersPerGallon = rate }
}

// WithGallonsPerBarrel overrides the barrel yield. It is a divisor, so it
// must be positive.
func WithGallonsPerBarrel(rate float64) Option {
	if !finite(rate) || rate <= 0 {
		panic(panicGallonsInvalid)
	}

	return func(o *Options) { o.gallonsPerBarrel = rate }
}

// WithPricePerGallon overrides the price. Zero is allowed.
func WithPricePerGallon(price float64) Option {
	if !finite(price) || price < 0 {
		panic(panicPriceInvalid)
	}

	return func(o *Options) { o.pricePerGallon = price }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		litersPerGallon:  DefaultLitersPerGallon,
		gallonsPerBarrel: DefaultGallonsPerBarrel,
		pricePerGallon:   DefaultPricePerGallon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
