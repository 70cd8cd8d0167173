// Package charts renders the dataset's four standard charts: an industry
// pie, a net-worth box plot, a countries bar chart, and a net-worth vs age
// scatter. Each renderer derives its own aggregate view from the table and
// writes a single artifact file.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
	"github.com/KaramelBytes/wealthloom-cli/internal/utils"
)

// Expected dataset columns. The column set is data-dependent, so every
// renderer checks presence before use.
const (
	ColCategory = "category"
	ColCountry  = "country"
	ColNetWorth = "finalWorth"
	ColAge      = "age"
)

// Options controls chart rendering.
type Options struct {
	// OutDir receives the artifact files.
	OutDir string
	// Format is "png" or "svg".
	Format string
	// Chart geometry in inches.
	WidthIn  float64
	HeightIn float64
	// TopCountries is the N for the countries-by-count bar chart.
	TopCountries int
	// Diag receives missing-column diagnostics. Defaults to os.Stderr.
	Diag io.Writer
}

// DefaultOptions returns reasonable defaults for chart rendering.
func DefaultOptions() Options {
	return Options{
		OutDir:       "wealthloom-out",
		Format:       "png",
		WidthIn:      10,
		HeightIn:     6,
		TopCountries: 10,
	}
}

func (o Options) diag() io.Writer {
	if o.Diag != nil {
		return o.Diag
	}
	return os.Stderr
}

func (o Options) ext() string {
	if o.Format == "svg" {
		return "svg"
	}
	return "png"
}

func (o Options) artifactPath(name string) string {
	return filepath.Join(o.OutDir, name+"."+o.ext())
}

// RenderAll renders the four charts in fixed order. Charts whose required
// columns are missing are skipped with a diagnostic; the remaining charts
// still render. It returns the paths of the artifacts written.
func RenderAll(t dataset.Table, opt Options) ([]string, error) {
	renderers := []func(dataset.Table, Options) (string, error){
		RenderIndustryPie,
		RenderNetWorthBox,
		RenderCountryBar,
		RenderWorthVsAgeScatter,
	}
	var written []string
	for _, render := range renderers {
		path, err := render(t, opt)
		if err != nil {
			return written, err
		}
		if path != "" {
			written = append(written, path)
		}
	}
	return written, nil
}

// requireColumns reports whether all columns are present, emitting a
// diagnostic for the first missing one.
func requireColumns(t dataset.Table, opt Options, chartName string, cols ...string) bool {
	for _, c := range cols {
		if !t.HasColumn(c) {
			fmt.Fprintf(opt.diag(), "⚠ column %q not found in dataset; skipping %s\n", c, chartName)
			return false
		}
	}
	return true
}

func savePlot(p *plot.Plot, opt Options, path string) error {
	if err := utils.EnsureDir(opt.OutDir); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	w := vg.Length(opt.WidthIn) * vg.Inch
	h := vg.Length(opt.HeightIn) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}
