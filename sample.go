// Package cscbench holds the benchmark data behind the client-side caching
// article: timing samples for two Redis client variants across four test
// configurations, and the tooling to measure, store, compare and chart them.
package cscbench

import "fmt"

// Variant identifies a client flavor under test.
type Variant string

const (
	// VariantRegular is the plain Redis client.
	VariantRegular Variant = "regular"
	// VariantCached is the client with an in-process read-through cache,
	// modeling server-assisted client-side caching.
	VariantCached Variant = "cached"
)

// Test names, shared by the sample table and the live runner.
const (
	TestSequentialGet = "sequential GET"
	TestPipelinedGet  = "pipelined GET"
)

// Config is one cell of the benchmark matrix.
type Config struct {
	Test     string `json:"test"`
	KeyCount int    `json:"key_count"`
}

// DefaultConfigs returns the four configurations the article measures,
// in publication order.
func DefaultConfigs() []Config {
	return []Config{
		{Test: TestSequentialGet, KeyCount: 1000},
		{Test: TestSequentialGet, KeyCount: 10000},
		{Test: TestPipelinedGet, KeyCount: 1000},
		{Test: TestPipelinedGet, KeyCount: 10000},
	}
}

// Series is one variant's ordered timing samples for a configuration.
// Millis[0] is the warm-up run.
type Series struct {
	Test     string    `json:"test"`
	Variant  Variant   `json:"variant"`
	KeyCount int       `json:"key_count"`
	Millis   []float64 `json:"millis"`
}

// Output is one dated measurement of the whole matrix.
type Output struct {
	Date    string   `json:"date"`
	Label   string   `json:"label"`
	Results []Series `json:"results"`
}

// Comparison pairs the two variants' series for one configuration.
type Comparison struct {
	Config
	Regular []float64
	Cached  []float64
}

// Row is one run of a comparison, side by side.
type Row struct {
	Run     string
	Regular float64
	Cached  float64
}

// Series returns the samples for the given configuration and variant,
// or nil when absent.
func (o Output) Series(cfg Config, v Variant) []float64 {
	for _, s := range o.Results {
		if s.Test == cfg.Test && s.KeyCount == cfg.KeyCount && s.Variant == v {
			return s.Millis
		}
	}
	return nil
}

// Comparisons pairs regular and cached series per configuration, in order
// of first appearance in Results. Configurations missing either variant
// are skipped.
func (o Output) Comparisons() []Comparison {
	var order []Config
	seen := make(map[Config]bool)
	for _, s := range o.Results {
		cfg := Config{Test: s.Test, KeyCount: s.KeyCount}
		if !seen[cfg] {
			seen[cfg] = true
			order = append(order, cfg)
		}
	}

	cmps := make([]Comparison, 0, len(order))
	for _, cfg := range order {
		reg := o.Series(cfg, VariantRegular)
		cached := o.Series(cfg, VariantCached)
		if reg == nil || cached == nil {
			continue
		}
		cmps = append(cmps, Comparison{Config: cfg, Regular: reg, Cached: cached})
	}
	return cmps
}

// Rows lays the comparison out run by run. Shorter series are padded with
// zeroes so every run still gets a row.
func (c Comparison) Rows() []Row {
	n := len(c.Regular)
	if len(c.Cached) > n {
		n = len(c.Cached)
	}
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		r := Row{Run: runLabel(i)}
		if i < len(c.Regular) {
			r.Regular = c.Regular[i]
		}
		if i < len(c.Cached) {
			r.Cached = c.Cached[i]
		}
		rows = append(rows, r)
	}
	return rows
}

func runLabel(i int) string {
	return fmt.Sprintf("run %d", i+1)
}
