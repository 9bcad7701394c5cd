// SPDX-License-Identifier: MIT

package matrix

import "math"

// Mul returns the product x·y.
// Complexity: O(1).
func Mul(x, y Matrix2x2) Matrix2x2 {
	return Matrix2x2{
		A: x.A*y.A + x.B*y.C,
		B: x.A*y.B + x.B*y.D,
		C: x.C*y.A + x.D*y.C,
		D: x.C*y.B + x.D*y.D,
	}
}

// EqualApprox reports whether every entry of m is within eps of the
// matching entry of o. NaN entries never compare equal.
func (m Matrix2x2) EqualApprox(o Matrix2x2, eps float64) bool {
	return within(m.A, o.A, eps) &&
		within(m.B, o.B, eps) &&
		within(m.C, o.C, eps) &&
		within(m.D, o.D, eps)
}

func within(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}
