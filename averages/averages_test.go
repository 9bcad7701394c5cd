// SPDX-License-Identifier: MIT

package averages_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warmup/averages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestSummarize_Scenario(t *testing.T) {
	s, err := averages.Summarize(4, 9)
	require.NoError(t, err)
	assert.Equal(t, 6.5, s.Arithmetic)
	assert.Equal(t, 6.0, s.Geometric)
	// √((16+81)/2)
	assert.InDelta(t, math.Sqrt(48.5), s.RMS, eps)
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 0.0, averages.Arithmetic(-3, 3))
	assert.Equal(t, 2.5, averages.Arithmetic(2.0, 3.0))
	assert.Equal(t, 2.5, averages.Arithmetic(int8(2), int8(3)))
	// int8 operands would overflow if summed before conversion.
	assert.Equal(t, 127.0, averages.Arithmetic(int8(127), int8(127)))
	assert.Equal(t, float64(math.MaxUint64), averages.Arithmetic(uint64(math.MaxUint64), uint64(math.MaxUint64)))
}

func TestGeometric(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b int
		want float64
	}{
		{"squares", 4, 9, 6},
		{"zero", 0, 9, 0},
		{"both negative", -2, -8, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := averages.Geometric(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)
		})
	}
}

func TestGeometric_NegativeProduct(t *testing.T) {
	_, err := averages.Geometric(-4, 9)
	assert.ErrorIs(t, err, averages.ErrNegativeProduct)

	_, err = averages.Summarize(4.0, -1.0)
	assert.ErrorIs(t, err, averages.ErrNegativeProduct)
}

func TestRootMeanSquare(t *testing.T) {
	assert.Equal(t, 5.0, averages.RootMeanSquare(5, 5))
	assert.Equal(t, 5.0, averages.RootMeanSquare(-5, 5))
	assert.InDelta(t, math.Sqrt(12.5), averages.RootMeanSquare(3, 4), eps)
}

// TestMeanInequality checks GM ≤ AM ≤ RMS for non-negative pairs.
func TestMeanInequality(t *testing.T) {
	for _, p := range [][2]float64{{1, 1}, {1, 100}, {0, 5}, {0.5, 2.25}} {
		s, err := averages.Summarize(p[0], p[1])
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Geometric, s.Arithmetic+eps, "%v", p)
		assert.LessOrEqual(t, s.Arithmetic, s.RMS+eps, "%v", p)
	}
}
