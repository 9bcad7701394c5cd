// SPDX-License-Identifier: MIT

package matrix

// DefaultEpsilon is the entrywise tolerance used by EqualApprox callers
// that have no better bound.
const DefaultEpsilon = 1e-9

// Matrix2x2 is a 2x2 matrix of float64 values:
//
//	| A  B |
//	| C  D |
//
// The zero value is the zero matrix.
type Matrix2x2 struct {
	A, B float64 // first row
	C, D float64 // second row
}

// New builds the matrix ((a, b), (c, d)).
func New(a, b, c, d float64) Matrix2x2 {
	return Matrix2x2{A: a, B: b, C: c, D: d}
}

// Identity returns ((1, 0), (0, 1)).
func Identity() Matrix2x2 {
	return Matrix2x2{A: 1, D: 1}
}

// Rows returns the entries in row-major order.
func (m Matrix2x2) Rows() [2][2]float64 {
	return [2][2]float64{{m.A, m.B}, {m.C, m.D}}
}

// Det returns the determinant A·D − B·C.
func (m Matrix2x2) Det() float64 {
	return m.A*m.D - m.B*m.C
}
