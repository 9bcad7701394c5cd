// SPDX-License-Identifier: MIT

// Package matrix provides a 2x2 real matrix value type and its closed-form
// inverse.
//
// A Matrix2x2 is laid out as
//
//	| A  B |
//	| C  D |
//
// and is treated as an immutable value: every operation takes matrices by
// value and returns a new one.
//
// Inverse (the adjugate/determinant formula):
//
//	det  = A·D − B·C
//	inv  = (1/det) · | D  −B |
//	                 | −C  A |
//
// A matrix whose determinant is exactly zero has no inverse and Inverse
// returns ErrSingular. Near-zero determinants are not guarded and may
// produce large values.
//
// Usage:
//
//	m := matrix.New(1, 2, 3, 4)
//	inv, err := matrix.Inverse(m)
//	if errors.Is(err, matrix.ErrSingular) {
//	  // no inverse
//	}
//	fmt.Println(inv) // ((-2.0, 1.0), (1.5, -0.5))
package matrix
