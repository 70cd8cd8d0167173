package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
)

// RenderWorthVsAgeScatter renders a scatter of net worth against age for the
// 5 industry categories with the most billionaires, one color and legend
// entry per category. Returns the artifact path, or "" if a required column
// is missing.
func RenderWorthVsAgeScatter(t dataset.Table, opt Options) (string, error) {
	if !requireColumns(t, opt, "net worth vs age scatter", ColAge, ColNetWorth, ColCategory) {
		return "", nil
	}
	cats := t.Frame.Col(ColCategory).Records()
	ages := t.Frame.Col(ColAge).Float()
	worth := t.Frame.Col(ColNetWorth).Float()
	top := TopN(CountByColumn(cats), 5)

	p := plot.New()
	p.Title.Text = "Net Worth vs Age of Billionaires (Top 5 Industries)"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Net Worth (in billions)"
	p.Legend.Top = true

	for i, cc := range top {
		var xys plotter.XYs
		for j := range cats {
			if cats[j] != cc.Value || math.IsNaN(ages[j]) || math.IsNaN(worth[j]) {
				continue
			}
			xys = append(xys, plotter.XY{X: ages[j], Y: worth[j]})
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return "", fmt.Errorf("scatter for %s: %w", cc.Value, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(cc.Value, s)
	}

	path := opt.artifactPath("networth_vs_age_scatter")
	if err := savePlot(p, opt, path); err != nil {
		return "", err
	}
	return path, nil
}
