package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cscbench "github.com/RedisLabs/csc-bench"
)

func TestRenderCmdBuiltin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "charts.html")

	cmd := newRenderCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--output", out})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "rendered 4 comparisons")

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "sequential GET, 1000 keys")
	assert.Contains(t, string(html), "88.78")
}

func TestRenderCmdInputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "2024-05-01_ci.json")
	require.NoError(t, cscbench.WriteJSONFile(input, cscbench.Output{
		Date:  "2024-05-01",
		Label: "ci",
		Results: []cscbench.Series{
			{Test: "custom GET", Variant: cscbench.VariantRegular, KeyCount: 5, Millis: []float64{2, 1}},
			{Test: "custom GET", Variant: cscbench.VariantCached, KeyCount: 5, Millis: []float64{1, 0.5}},
		},
	}))

	out := filepath.Join(dir, "charts.html")
	cmd := newRenderCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--input", input, "--output", out})

	require.NoError(t, cmd.Execute())

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "custom GET, 5 keys")
}

func TestRenderCmdMissingInput(t *testing.T) {
	cmd := newRenderCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--input", filepath.Join(t.TempDir(), "nope.json")})

	assert.Error(t, cmd.Execute())
}
