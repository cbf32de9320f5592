package cscbench

// Builtin returns the sample table as published in the article.
// Fixed at authoring time; every series holds five runs, the first being
// the warm-up. The cached variant's warm-up is slow because the local
// cache starts empty.
func Builtin() Output {
	return Output{
		Date:  "2020-07-28",
		Label: "article",
		Results: []Series{
			{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 1000,
				Millis: []float64{99.87, 88.62, 87.54, 93.37, 85.59}},
			{Test: TestSequentialGet, Variant: VariantCached, KeyCount: 1000,
				Millis: []float64{40.21, 4.95, 4.67, 5.02, 4.71}},

			{Test: TestSequentialGet, Variant: VariantRegular, KeyCount: 10000,
				Millis: []float64{929.91, 874.64, 867.18, 905.30, 861.71}},
			{Test: TestSequentialGet, Variant: VariantCached, KeyCount: 10000,
				Millis: []float64{404.51, 46.61, 44.77, 48.32, 45.09}},

			{Test: TestPipelinedGet, Variant: VariantRegular, KeyCount: 1000,
				Millis: []float64{13.90, 10.71, 10.54, 11.09, 10.62}},
			{Test: TestPipelinedGet, Variant: VariantCached, KeyCount: 1000,
				Millis: []float64{38.49, 4.87, 4.61, 4.94, 4.66}},

			{Test: TestPipelinedGet, Variant: VariantRegular, KeyCount: 10000,
				Millis: []float64{132.17, 104.45, 101.94, 108.11, 103.20}},
			{Test: TestPipelinedGet, Variant: VariantCached, KeyCount: 10000,
				Millis: []float64{402.32, 45.78, 44.10, 47.65, 44.39}},
		},
	}
}
