// SPDX-License-Identifier: MIT

// Package averages computes the arithmetic mean, geometric mean and root
// mean square of two numbers.
package averages

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrNegativeProduct is returned by Geometric when a·b < 0, which has no
// real square root.
var ErrNegativeProduct = errors.New("averages: geometric mean of a negative product")

// Summary holds all three averages of a pair.
type Summary struct {
	Arithmetic float64
	Geometric  float64
	RMS        float64
}

// Arithmetic returns (a+b)/2. Operands are converted to float64 first, so
// integer inputs neither truncate nor overflow.
func Arithmetic[T Number](a, b T) float64 {
	return (float64(a) + float64(b)) / 2
}

// Geometric returns √(a·b), or ErrNegativeProduct when a·b < 0.
func Geometric[T Number](a, b T) (float64, error) {
	product := float64(a) * float64(b)
	if product < 0 {
		return 0, fmt.Errorf("Geometric(%v, %v): %w", a, b, ErrNegativeProduct)
	}

	return math.Sqrt(product), nil
}

// RootMeanSquare returns √((a²+b²)/2).
func RootMeanSquare[T Number](a, b T) float64 {
	x, y := float64(a), float64(b)

	return math.Sqrt((x*x + y*y) / 2)
}

// Summarize computes all three averages, failing when the geometric mean is
// undefined.
func Summarize[T Number](a, b T) (Summary, error) {
	g, err := Geometric(a, b)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Arithmetic: Arithmetic(a, b),
		Geometric:  g,
		RMS:        RootMeanSquare(a, b),
	}, nil
}
