package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
)

var billionaireRows = []string{
	"category,country,finalWorth,age",
	"Tech,US,120,50",
	"Tech,US,90,61",
	"Finance,US,80,70",
	"Finance,UK,60,55",
	"Retail,FR,40,66",
	"Retail,UK,30,48",
	"Tech,CN,110,39",
	"Energy,US,25,72",
	"Finance,CN,70,58",
	"Tech,FR,35,45",
}

func testTable(t *testing.T, rows []string) dataset.Table {
	t.Helper()
	tab, err := dataset.Read(strings.NewReader(strings.Join(rows, "\n")), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("read table: %v", err)
	}
	return tab
}

func testOptions(t *testing.T) Options {
	t.Helper()
	opt := DefaultOptions()
	opt.OutDir = t.TempDir()
	opt.WidthIn = 4
	opt.HeightIn = 3
	return opt
}

func assertArtifact(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("artifact %s is empty", path)
	}
}

func TestRenderAllWritesFourCharts(t *testing.T) {
	tab := testTable(t, billionaireRows)
	opt := testOptions(t)
	written, err := RenderAll(tab, opt)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(written) != 4 {
		t.Fatalf("written = %#v, want 4 charts", written)
	}
	for _, path := range written {
		assertArtifact(t, path)
		if filepath.Ext(path) != ".png" {
			t.Fatalf("unexpected extension: %s", path)
		}
	}
}

func TestRenderSVGFormat(t *testing.T) {
	tab := testTable(t, billionaireRows)
	opt := testOptions(t)
	opt.Format = "svg"
	path, err := RenderCountryBar(tab, opt)
	if err != nil {
		t.Fatalf("RenderCountryBar: %v", err)
	}
	if filepath.Ext(path) != ".svg" {
		t.Fatalf("path = %s, want .svg", path)
	}
	assertArtifact(t, path)
}

func TestMissingColumnSkipsWithDiagnostic(t *testing.T) {
	tab := testTable(t, []string{
		"name,worth",
		"a,10",
		"b,20",
	})
	type renderCase struct {
		name   string
		render func(dataset.Table, Options) (string, error)
		column string
	}
	cases := []renderCase{
		{"pie", RenderIndustryPie, ColCategory},
		{"box", RenderNetWorthBox, ColCountry},
		{"bar", RenderCountryBar, ColCountry},
		{"scatter", RenderWorthVsAgeScatter, ColAge},
	}
	for _, tc := range cases {
		var diag strings.Builder
		opt := testOptions(t)
		opt.Diag = &diag
		path, err := tc.render(tab, opt)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if path != "" {
			t.Fatalf("%s: chart written despite missing column", tc.name)
		}
		if !strings.Contains(diag.String(), tc.column) {
			t.Fatalf("%s: diagnostic %q does not name column %q", tc.name, diag.String(), tc.column)
		}
	}
}

func TestRenderIndustryPieEmptyTableEmitsDiagnostic(t *testing.T) {
	tab := dataset.Table{
		Frame:  dataframe.New(series.New([]string{}, series.String, ColCategory)),
		Schema: dataset.Schema{ColCategory: dataset.KindCategorical},
	}
	var diag strings.Builder
	opt := testOptions(t)
	opt.Diag = &diag
	path, err := RenderIndustryPie(tab, opt)
	if err != nil {
		t.Fatalf("RenderIndustryPie: %v", err)
	}
	if path != "" {
		t.Fatalf("chart written for empty table: %s", path)
	}
	if !strings.Contains(diag.String(), ColCategory) {
		t.Fatalf("diagnostic %q does not name column %q", diag.String(), ColCategory)
	}
}

func TestRenderAllContinuesPastSkips(t *testing.T) {
	// Only the country column exists, so only the bar chart renders.
	tab := testTable(t, []string{
		"country,worth",
		"US,10",
		"UK,20",
		"US,5",
	})
	var diag strings.Builder
	opt := testOptions(t)
	opt.Diag = &diag
	written, err := RenderAll(tab, opt)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("written = %#v, want just the bar chart", written)
	}
	if !strings.Contains(written[0], "top_countries_bar") {
		t.Fatalf("unexpected artifact: %s", written[0])
	}
	if diag.Len() == 0 {
		t.Fatalf("expected diagnostics for skipped charts")
	}
}

func TestRenderCountryBarHonorsTopN(t *testing.T) {
	tab := testTable(t, billionaireRows)
	opt := testOptions(t)
	opt.TopCountries = 2
	path, err := RenderCountryBar(tab, opt)
	if err != nil {
		t.Fatalf("RenderCountryBar: %v", err)
	}
	assertArtifact(t, path)
}
