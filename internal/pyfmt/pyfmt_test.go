// SPDX-License-Identifier: MIT

package pyfmt_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warmup/internal/pyfmt"
	"github.com/stretchr/testify/assert"
)

func TestFloat(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 6, "6.0"},
		{"negative whole", -2, "-2.0"},
		{"fraction", 6.5, "6.5"},
		{"negative fraction", -0.5, "-0.5"},
		{"zero", 0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"small fixed", 0.0001, "0.0001"},
		{"small exponent", 1.5e-5, "1.5e-05"},
		{"large fixed", 1e15, "1000000000000000.0"},
		{"large exponent", 1e16, "1e+16"},
		{"nan", math.NaN(), "nan"},
		{"inf", math.Inf(1), "inf"},
		{"minus inf", math.Inf(-1), "-inf"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pyfmt.Float(tc.in))
		})
	}
}

func TestPair(t *testing.T) {
	assert.Equal(t, "(1.0, -2.5)", pyfmt.Pair(1, -2.5))
}
