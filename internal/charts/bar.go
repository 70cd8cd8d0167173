package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
)

// RenderCountryBar renders a horizontal bar chart of the top N countries by
// billionaire count (largest at the top). Returns the artifact path, or ""
// if the country column is missing.
func RenderCountryBar(t dataset.Table, opt Options) (string, error) {
	if !requireColumns(t, opt, "countries bar chart", ColCountry) {
		return "", nil
	}
	n := opt.TopCountries
	if n <= 0 {
		n = 10
	}
	top := TopN(CountByColumn(t.Frame.Col(ColCountry).Records()), n)
	if len(top) == 0 {
		return "", nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Countries by Number of Billionaires", len(top))
	p.X.Label.Text = "Number of Billionaires"
	p.Y.Label.Text = "Country"

	// Nominal Y runs bottom-up, so reverse to put the largest on top.
	vals := make(plotter.Values, len(top))
	names := make([]string, len(top))
	for i, cc := range top {
		j := len(top) - 1 - i
		vals[j] = cc.Count
		names[j] = cc.Value
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(15))
	if err != nil {
		return "", fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	path := opt.artifactPath("top_countries_bar")
	if err := savePlot(p, opt, path); err != nil {
		return "", err
	}
	return path, nil
}
