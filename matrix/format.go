// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/warmup/internal/pyfmt"

// String implements fmt.Stringer as a nested tuple: ((A, B), (C, D)).
func (m Matrix2x2) String() string {
	return "(" + pyfmt.Pair(m.A, m.B) + ", " + pyfmt.Pair(m.C, m.D) + ")"
}
