// SPDX-License-Identifier: MIT

// Package pyfmt renders numbers the way the exercises print them:
// shortest round-trip digits, always with a decimal point for finite
// floats ("6.0", not "6"), and exponent form outside [1e-4, 1e16).
package pyfmt

import (
	"math"
	"strconv"
	"strings"
)

// Exponent thresholds for switching from fixed to scientific notation.
const (
	minFixed = 1e-4
	maxFixed = 1e16
)

// Float returns the shortest decimal form of v that parses back to v.
//
//	Float(6)      == "6.0"
//	Float(-0.5)   == "-0.5"
//	Float(1.5e-5) == "1.5e-05"
//	Float(1e16)   == "1e+16"
func Float(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < minFixed || abs >= maxFixed) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Pair renders (x, y).
func Pair(x, y float64) string {
	return "(" + Float(x) + ", " + Float(y) + ")"
}
