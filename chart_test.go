package cscbench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonChartContent(t *testing.T) {
	cmps := Builtin().Comparisons()
	require.NotEmpty(t, cmps)

	var buf bytes.Buffer
	require.NoError(t, NewComparisonChart(cmps[0]).Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "sequential GET, 1000 keys")
	assert.Contains(t, html, "Time (ms)")
	assert.Contains(t, html, "88.78") // trimmed average in the subtitle
	assert.Contains(t, html, "run 1")
	assert.Contains(t, html, "run 5")
	assert.Contains(t, html, string(VariantRegular))
	assert.Contains(t, html, string(VariantCached))
}

func TestPageHoldsAllComparisons(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPage(Builtin()).Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "sequential GET, 1000 keys")
	assert.Contains(t, html, "sequential GET, 10000 keys")
	assert.Contains(t, html, "pipelined GET, 1000 keys")
	assert.Contains(t, html, "pipelined GET, 10000 keys")
}
