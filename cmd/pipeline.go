package cmd

import (
	"fmt"

	"github.com/KaramelBytes/wealthloom-cli/internal/charts"
	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
)

// datasetOptions builds load options from config plus an optional
// --delimiter override.
func datasetOptions(delimFlag string) (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	if cfg != nil {
		if r, err := delimiterRune(cfg.Delimiter); err == nil && r != 0 {
			opt.Delimiter = r
		}
		if len(cfg.NAValues) > 0 {
			opt.NAValues = cfg.NAValues
		}
	}
	if delimFlag != "" {
		r, err := delimiterRune(delimFlag)
		if err != nil {
			return opt, err
		}
		opt.Delimiter = r
	}
	return opt, nil
}

func delimiterRune(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", s)
	}
}

// loadAndClean runs the first pipeline stage: parse the CSV and impute
// missing values.
func loadAndClean(path, delimFlag string) (dataset.Table, dataset.FillReport, error) {
	opt, err := datasetOptions(delimFlag)
	if err != nil {
		return dataset.Table{}, dataset.FillReport{}, err
	}
	t, err := dataset.Load(path, opt)
	if err != nil {
		return dataset.Table{}, dataset.FillReport{}, err
	}
	cleaned, rep, err := dataset.Clean(t)
	if err != nil {
		return dataset.Table{}, dataset.FillReport{}, fmt.Errorf("clean dataset: %w", err)
	}
	return cleaned, rep, nil
}

// chartOptions builds render options from config plus flag overrides.
// Zero-valued flags keep the config (or default) value.
func chartOptions(outDir, format string, topCountries int) charts.Options {
	opt := charts.DefaultOptions()
	if cfg != nil {
		if cfg.OutDir != "" {
			opt.OutDir = cfg.OutDir
		}
		if cfg.ChartFormat != "" {
			opt.Format = cfg.ChartFormat
		}
		if cfg.ChartWidthIn > 0 {
			opt.WidthIn = cfg.ChartWidthIn
		}
		if cfg.ChartHeightIn > 0 {
			opt.HeightIn = cfg.ChartHeightIn
		}
		if cfg.TopCountries > 0 {
			opt.TopCountries = cfg.TopCountries
		}
	}
	if outDir != "" {
		opt.OutDir = outDir
	}
	if format != "" {
		opt.Format = format
	}
	if topCountries > 0 {
		opt.TopCountries = topCountries
	}
	return opt
}

func printFills(rep dataset.FillReport) {
	for _, f := range rep.Fills {
		if f.Kind == dataset.KindNumeric {
			fmt.Printf("✓ Filled %d missing values in %q with median %.6g\n", f.Count, f.Column, f.NumValue)
		} else {
			fmt.Printf("✓ Filled %d missing values in %q with mode %q\n", f.Count, f.Column, f.StrValue)
		}
	}
}
