// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// zeroDet is the only determinant treated as singular; near-zero values
// are inverted as-is.
const zeroDet = 0.0

// Inverse returns the multiplicative inverse of m, or ErrSingular when
// m.Det() is exactly zero.
// Blueprint:
//
//	Stage 1 (Validate): det = A·D − B·C, fail on det == 0.
//	Stage 2 (Prepare): coefficient = 1/det.
//	Stage 3 (Execute): swap A and D, negate B and C, scale by coefficient.
//
// The input is never modified.
// Complexity: O(1).
func Inverse(m Matrix2x2) (Matrix2x2, error) {
	// Stage 1: Validate
	det := m.Det()
	if det == zeroDet {
		return Matrix2x2{}, fmt.Errorf("Inverse: det(%v) = 0: %w", m, ErrSingular)
	}

	// Stage 2: Prepare
	coefficient := 1 / det

	// Stage 3: Execute
	return Matrix2x2{
		A: coefficient * m.D,
		B: coefficient * -m.B,
		C: coefficient * -m.C,
		D: coefficient * m.A,
	}, nil
}

// Invert is Inverse for the matrix ((a, b), (c, d)).
func Invert(a, b, c, d float64) (Matrix2x2, error) {
	return Inverse(New(a, b, c, d))
}
