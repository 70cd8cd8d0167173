package cmd

import (
	"testing"

	cfgpkg "github.com/KaramelBytes/wealthloom-cli/internal/config"
)

func TestDelimiterRune(t *testing.T) {
	cases := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"", 0, true},
		{",", ',', true},
		{";", ';', true},
		{"tab", '\t', true},
		{"\t", '\t', true},
		{"|", 0, false},
	}
	for _, tc := range cases {
		got, err := delimiterRune(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("delimiterRune(%q): %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("delimiterRune(%q): expected error", tc.in)
		}
		if got != tc.want {
			t.Fatalf("delimiterRune(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestChartOptionsOverrides(t *testing.T) {
	old := cfg
	defer func() { cfg = old }()

	cfg = &cfgpkg.Global{
		OutDir:        "from-config",
		ChartFormat:   "svg",
		ChartWidthIn:  12,
		ChartHeightIn: 7,
		TopCountries:  15,
	}
	opt := chartOptions("", "", 0)
	if opt.OutDir != "from-config" || opt.Format != "svg" || opt.TopCountries != 15 {
		t.Fatalf("config not applied: %#v", opt)
	}
	if opt.WidthIn != 12 || opt.HeightIn != 7 {
		t.Fatalf("config geometry not applied: %#v", opt)
	}

	opt = chartOptions("flag-dir", "png", 3)
	if opt.OutDir != "flag-dir" || opt.Format != "png" || opt.TopCountries != 3 {
		t.Fatalf("flags should override config: %#v", opt)
	}

	cfg = nil
	opt = chartOptions("", "", 0)
	if opt.OutDir == "" || opt.Format != "png" || opt.TopCountries != 10 {
		t.Fatalf("defaults not applied without config: %#v", opt)
	}
}
