package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
	"github.com/KaramelBytes/wealthloom-cli/internal/utils"
)

// RenderIndustryPie renders a pie chart of billionaire counts for the top 10
// industry categories, with the remainder grouped into "Other". Slice labels
// carry the percentage share. Returns the artifact path, or "" if the
// category column is missing.
func RenderIndustryPie(t dataset.Table, opt Options) (string, error) {
	if !requireColumns(t, opt, "industry pie chart", ColCategory) {
		return "", nil
	}
	counts := TopNWithOther(CountByColumn(t.Frame.Col(ColCategory).Records()), 10)
	var total float64
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		fmt.Fprintf(opt.diag(), "⚠ column %q has no values; skipping industry pie chart\n", ColCategory)
		return "", nil
	}

	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		values = append(values, chart.Value{
			Value: c.Count,
			Label: fmt.Sprintf("%s (%.1f%%)", c.Value, 100*c.Count/total),
		})
	}
	pie := chart.PieChart{
		Title:  "Distribution of Billionaires by Top 10 Industry Categories",
		Width:  int(opt.WidthIn * 96),
		Height: int(opt.HeightIn * 96),
		Values: values,
	}

	var buf bytes.Buffer
	provider := chart.PNG
	if opt.ext() == "svg" {
		provider = chart.SVG
	}
	if err := pie.Render(provider, &buf); err != nil {
		return "", fmt.Errorf("render pie chart: %w", err)
	}
	if err := utils.EnsureDir(opt.OutDir); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}
	path := opt.artifactPath("top_industries_pie")
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
