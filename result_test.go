package microbench

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrix(iters ...[]time.Duration) [][]time.Duration {
	return iters
}

func ns(vs ...int64) []time.Duration {
	out := make([]time.Duration, len(vs))
	for i, v := range vs {
		out[i] = time.Duration(v)
	}
	return out
}

func TestStatsUniformMatrix(t *testing.T) {
	s, err := NewStats("uniform", 3, 2, matrix(ns(10, 20, 30), ns(40, 50, 60)))
	require.NoError(t, err)

	assert.Equal(t, "uniform", s.Label)
	assert.Equal(t, 6, s.Successes)
	assert.Equal(t, []time.Duration{60, 150}, s.IterTotals)
	assert.Equal(t, []time.Duration{20, 50}, s.IterMeans)
	assert.Equal(t, time.Duration(210), s.Total)
	assert.Equal(t, time.Duration(35), s.Mean)
	assert.Equal(t, time.Duration(10), s.Best)
	assert.Equal(t, time.Duration(60), s.Worst)
	assert.Equal(t, 6.0, s.DiffRatio)
	assert.NotEmpty(t, s.Warning)
}

func TestStatsGrandTotalIsExactSum(t *testing.T) {
	m := matrix(ns(1, 2, 3), ns(4), ns(5, 6))
	s, err := NewStats("total", 3, 3, m)
	require.NoError(t, err)

	var want time.Duration
	for _, iter := range m {
		for _, d := range iter {
			want += d
		}
	}
	assert.Equal(t, want, s.Total)
}

func TestStatsSingleSampleIterationsMeanIsSimpleMean(t *testing.T) {
	s, err := NewStats("single", 1, 4, matrix(ns(10), ns(20), ns(30), ns(40)))
	require.NoError(t, err)

	assert.Equal(t, time.Duration(25), s.Mean)
}

func TestStatsMeanOfMeansNotPooledMean(t *testing.T) {
	// Iteration means are 10 and 40; their unweighted mean is 25. The
	// pooled mean over all four samples would be 17.
	s, err := NewStats("means", 3, 2, matrix(ns(10, 10, 10), ns(40)))
	require.NoError(t, err)

	assert.Equal(t, time.Duration(25), s.Mean)
}

func TestStatsBoundsHoldForAllSamples(t *testing.T) {
	m := matrix(ns(7, 3, 9), ns(4, 8))
	s, err := NewStats("bounds", 3, 2, m)
	require.NoError(t, err)

	for _, iter := range m {
		for _, d := range iter {
			assert.GreaterOrEqual(t, d, s.Best)
			assert.LessOrEqual(t, d, s.Worst)
		}
	}
	assert.GreaterOrEqual(t, s.DiffRatio, 1.0)
}

func TestStatsStddevUsesRequestedDenominator(t *testing.T) {
	// One dropped sample: 3 recorded of 4 requested. Mean of means is
	// (150+300)/2 = 225; squared deviations sum to 21875.
	m := matrix(ns(100, 200), ns(300))

	legacy, err := NewStats("stddev", 2, 2, m)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.Sqrt(21875.0/4)), legacy.Stddev)

	corrected, err := newStats("stddev", 2, 2, m, true)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.Sqrt(21875.0/3)), corrected.Stddev)
	assert.Greater(t, corrected.Stddev, legacy.Stddev)
}

func TestStatsEmptyIterationExcludedFromBestWorst(t *testing.T) {
	s, err := NewStats("empty-iter", 2, 2, matrix(ns(5, 9), ns()))
	require.NoError(t, err)

	assert.Equal(t, time.Duration(5), s.Best)
	assert.Equal(t, time.Duration(9), s.Worst)
	// The empty iteration still participates in the mean of means with a
	// zero mean: (7+0)/2.
	assert.Equal(t, time.Duration(3), s.Mean)
	assert.Equal(t, 2, s.Successes)
}

func TestStatsAllIterationsEmpty(t *testing.T) {
	s, err := NewStats("all-empty", 2, 2, matrix(ns(), ns()))
	require.NoError(t, err)

	assert.Zero(t, s.Successes)
	assert.Zero(t, s.Best)
	assert.Zero(t, s.Worst)
	assert.Equal(t, 1.0, s.DiffRatio)
	assert.Empty(t, s.Warning)
}

func TestStatsZeroBestUnboundedRatio(t *testing.T) {
	s, err := NewStats("zero-best", 2, 1, matrix(ns(0, 10)))
	require.NoError(t, err)

	assert.True(t, math.IsInf(s.DiffRatio, 1))
	assert.NotEmpty(t, s.Warning)
}

func TestStatsWarningThreshold(t *testing.T) {
	warned, err := NewStats("warned", 2, 1, matrix(ns(10, 25)))
	require.NoError(t, err)
	assert.Equal(t, 2.5, warned.DiffRatio)
	assert.NotEmpty(t, warned.Warning)

	// A ratio of exactly 2.0 does not warn.
	quiet, err := NewStats("quiet", 2, 1, matrix(ns(10, 20)))
	require.NoError(t, err)
	assert.Equal(t, 2.0, quiet.DiffRatio)
	assert.Empty(t, quiet.Warning)
}

func TestStatsDiffRatioRoundsToTwoDecimals(t *testing.T) {
	// 9/7 is 1.2857..., which rounds to 1.29.
	s, err := NewStats("round", 2, 1, matrix(ns(7, 9)))
	require.NoError(t, err)

	assert.Equal(t, 1.29, s.DiffRatio)
}

func TestStatsPreconditions(t *testing.T) {
	_, err := NewStats("empty", 1, 0, nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewStats("mismatch", 1, 3, matrix(ns(1), ns(2)))
	assert.ErrorIs(t, err, ErrIterationMismatch)
}

func TestStatsRender(t *testing.T) {
	s, err := NewStats("render", 2, 1, matrix(ns(1500, 2500)))
	require.NoError(t, err)

	out := s.Render(3)
	assert.Contains(t, out, "benchmark: render")
	assert.Contains(t, out, "loops:      2")
	assert.Contains(t, out, "iterations: 1")
	assert.Contains(t, out, "successes:  2")
	assert.Contains(t, out, "total:      4 µs")
	assert.Contains(t, out, "mean:       2 µs")
	assert.Contains(t, out, "best:       1.5 µs")
	assert.Contains(t, out, "worst:      2.5 µs")
	assert.Contains(t, out, "stddev:     500 ns")
	assert.Contains(t, out, "diff ratio: 1.67")
	assert.NotContains(t, out, "warning:")

	// String uses the configured default precision.
	assert.Equal(t, s.Render(3), s.String())
}
