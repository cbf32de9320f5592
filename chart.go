package cscbench

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewComparisonChart builds a grouped bar chart for one configuration:
// one category per run, one bar series per variant, trimmed averages in
// the subtitle.
func NewComparisonChart(c Comparison) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s, %d keys", c.Test, c.KeyCount),
			Subtitle: fmt.Sprintf("trimmed avg regular: %s ms, cached: %s ms",
				FormatMillis(TrimmedMean(c.Regular)), FormatMillis(TrimmedMean(c.Cached))),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time (ms)"}),
	)

	rows := c.Rows()
	labels := make([]string, 0, len(rows))
	regular := make([]opts.BarData, 0, len(rows))
	cached := make([]opts.BarData, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Run)
		regular = append(regular, opts.BarData{Value: r.Regular})
		cached = append(cached, opts.BarData{Value: r.Cached})
	}

	bar.SetXAxis(labels)
	bar.AddSeries(string(VariantRegular), regular)
	bar.AddSeries(string(VariantCached), cached)
	return bar
}

// NewPage aggregates one chart per comparison, in the output's order.
func NewPage(out Output) *components.Page {
	page := components.NewPage()
	for _, c := range out.Comparisons() {
		page.AddCharts(NewComparisonChart(c))
	}
	return page
}
