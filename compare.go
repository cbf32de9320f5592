package cscbench

// Delta is the trimmed-mean change of one series between two outputs.
type Delta struct {
	Config
	Variant   Variant
	Baseline  float64 // trimmed mean, ms
	Candidate float64 // trimmed mean, ms
	Percent   float64 // positive means the candidate got slower
}

// Compare pairs series present in both outputs, in the candidate's order,
// and reports the percentage change of their trimmed means.
func Compare(baseline, candidate Output) []Delta {
	var deltas []Delta
	for _, s := range candidate.Results {
		cfg := Config{Test: s.Test, KeyCount: s.KeyCount}
		base := baseline.Series(cfg, s.Variant)
		if base == nil {
			continue
		}

		d := Delta{
			Config:    cfg,
			Variant:   s.Variant,
			Baseline:  TrimmedMean(base),
			Candidate: TrimmedMean(s.Millis),
		}
		if d.Baseline > 0 {
			d.Percent = (d.Candidate - d.Baseline) / d.Baseline * 100
		}
		deltas = append(deltas, d)
	}
	return deltas
}

// Regression reports whether the delta slowed down past the threshold
// (a percentage, e.g. 10 for 10%).
func (d Delta) Regression(threshold float64) bool {
	return d.Percent > threshold
}
