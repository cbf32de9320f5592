package cscbench

import "strconv"

// TrimmedMean averages a series with its first sample dropped; the first
// run warms caches and connections and is not trusted. Series with fewer
// than two samples have no trustworthy data and yield 0.
func TrimmedMean(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	rest := samples[1:]
	var sum float64
	for _, v := range rest {
		sum += v
	}
	return sum / float64(len(rest))
}

// FormatMillis renders a millisecond value with two decimals, the
// precision used everywhere timings are displayed.
func FormatMillis(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
