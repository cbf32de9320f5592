package cscbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	baseline := Output{
		Results: []Series{
			{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 1000,
				Millis: []float64{50, 10, 10, 10, 10}},
			{Test: TestSequentialGet, Variant: VariantCached, KeyCount: 1000,
				Millis: []float64{50, 20, 20, 20, 20}},
		},
	}
	candidate := Output{
		Results: []Series{
			{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 1000,
				Millis: []float64{50, 12, 12, 12, 12}},
			{Test: TestSequentialGet, Variant: VariantCached, KeyCount: 1000,
				Millis: []float64{50, 15, 15, 15, 15}},
			// absent from the baseline, must be skipped
			{Test: TestPipelinedGet, Variant: VariantRegular, KeyCount: 1000,
				Millis: []float64{1, 1, 1, 1, 1}},
		},
	}

	deltas := Compare(baseline, candidate)
	require.Len(t, deltas, 2)

	slower := deltas[0]
	assert.Equal(t, VariantRegular, slower.Variant)
	assert.InDelta(t, 10.0, slower.Baseline, 0.0001)
	assert.InDelta(t, 12.0, slower.Candidate, 0.0001)
	assert.InDelta(t, 20.0, slower.Percent, 0.0001)
	assert.True(t, slower.Regression(10))
	assert.False(t, slower.Regression(25))

	faster := deltas[1]
	assert.Equal(t, VariantCached, faster.Variant)
	assert.InDelta(t, -25.0, faster.Percent, 0.0001)
	assert.False(t, faster.Regression(10))
}

func TestCompareZeroBaseline(t *testing.T) {
	baseline := Output{Results: []Series{
		{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 1000, Millis: []float64{5}},
	}}
	candidate := Output{Results: []Series{
		{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 1000, Millis: []float64{5, 9, 9}},
	}}

	// single-sample baseline trims to nothing; no percentage is computed
	deltas := Compare(baseline, candidate)
	require.Len(t, deltas, 1)
	assert.Equal(t, 0.0, deltas[0].Percent)
}
