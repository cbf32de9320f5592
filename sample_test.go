package cscbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinShape(t *testing.T) {
	out := Builtin()

	cmps := out.Comparisons()
	require.Len(t, cmps, 4)

	for i, cfg := range DefaultConfigs() {
		assert.Equal(t, cfg, cmps[i].Config)
		assert.Len(t, cmps[i].Rows(), 5)
	}
}

func TestBuiltinExampleSeries(t *testing.T) {
	out := Builtin()

	s := out.Series(Config{Test: TestSequentialGet, KeyCount: 1000}, VariantRegular)
	require.NotNil(t, s)
	assert.Equal(t, []float64{99.87, 88.62, 87.54, 93.37, 85.59}, s)
	assert.Equal(t, "88.78", FormatMillis(TrimmedMean(s)))
}

func TestSeriesLookupMissing(t *testing.T) {
	out := Builtin()
	assert.Nil(t, out.Series(Config{Test: "no such test", KeyCount: 1000}, VariantRegular))
	assert.Nil(t, out.Series(Config{Test: TestSequentialGet, KeyCount: 7}, VariantCached))
}

func TestComparisonsSkipIncompletePairs(t *testing.T) {
	out := Output{
		Results: []Series{
			{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 1000, Millis: []float64{1, 2}},
			// no cached counterpart
			{Test: TestPipelinedGet, Variant: VariantRegular, KeyCount: 1000, Millis: []float64{1, 2}},
			{Test: TestPipelinedGet, Variant: VariantCached, KeyCount: 1000, Millis: []float64{3, 4}},
		},
	}

	cmps := out.Comparisons()
	require.Len(t, cmps, 1)
	assert.Equal(t, TestPipelinedGet, cmps[0].Test)
}

func TestRows(t *testing.T) {
	c := Comparison{
		Config:  Config{Test: TestSequentialGet, KeyCount: 1000},
		Regular: []float64{10, 20, 30},
		Cached:  []float64{1, 2},
	}

	rows := c.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Run: "run 1", Regular: 10, Cached: 1}, rows[0])
	assert.Equal(t, Row{Run: "run 2", Regular: 20, Cached: 2}, rows[1])
	// shorter series padded with zero
	assert.Equal(t, Row{Run: "run 3", Regular: 30, Cached: 0}, rows[2])
}
