package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
)

// RenderNetWorthBox renders a box plot of net worth per country for the 10
// countries with the highest summed net worth. Returns the artifact path,
// or "" if a required column is missing.
func RenderNetWorthBox(t dataset.Table, opt Options) (string, error) {
	if !requireColumns(t, opt, "net worth box plot", ColCountry, ColNetWorth) {
		return "", nil
	}
	countries := t.Frame.Col(ColCountry).Records()
	worth := t.Frame.Col(ColNetWorth).Float()
	top := TopN(SumByColumn(countries, worth), 10)

	p := plot.New()
	p.Title.Text = "Net Worth of Billionaires by Top 10 Countries"
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "Net Worth (in billions)"

	names := make([]string, 0, len(top))
	for _, cc := range top {
		var vals plotter.Values
		for i, c := range countries {
			if c == cc.Value && !math.IsNaN(worth[i]) {
				vals = append(vals, worth[i])
			}
		}
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(20), float64(len(names)), vals)
		if err != nil {
			return "", fmt.Errorf("box plot for %s: %w", cc.Value, err)
		}
		p.Add(box)
		names = append(names, cc.Value)
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	path := opt.artifactPath("networth_by_country_box")
	if err := savePlot(p, opt, path); err != nil {
		return "", err
	}
	return path, nil
}
