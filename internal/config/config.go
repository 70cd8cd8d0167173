package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Analysis output
	OutDir      string `mapstructure:"out_dir" yaml:"out_dir"`
	ChartFormat string `mapstructure:"chart_format" yaml:"chart_format"`
	// Chart geometry in inches
	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`
	// Default N for the countries-by-count bar chart
	TopCountries int `mapstructure:"top_countries" yaml:"top_countries"`

	// CSV parsing
	Delimiter string   `mapstructure:"delimiter" yaml:"delimiter"`
	NAValues  []string `mapstructure:"na_values" yaml:"na_values"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.wealthloom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".wealthloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WEALTHLOOM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("out_dir", "wealthloom-out")
	v.SetDefault("chart_format", "png")
	v.SetDefault("chart_width_in", 10.0)
	v.SetDefault("chart_height_in", 6.0)
	v.SetDefault("top_countries", 10)
	v.SetDefault("delimiter", ",")
	v.SetDefault("na_values", []string{"", "NA", "NaN", "null"})

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".wealthloom")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
