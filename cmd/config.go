package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/wealthloom-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set WealthLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("out_dir: %s\n", cfg.OutDir)
		fmt.Printf("chart_format: %s\n", cfg.ChartFormat)
		fmt.Printf("chart_width_in: %.1f\n", cfg.ChartWidthIn)
		fmt.Printf("chart_height_in: %.1f\n", cfg.ChartHeightIn)
		fmt.Printf("top_countries: %d\n", cfg.TopCountries)
		fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		fmt.Printf("na_values: %s\n", strings.Join(cfg.NAValues, ", "))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "out_dir":
			cfg.OutDir = val
		case "chart_format":
			switch val {
			case "png", "svg":
				cfg.ChartFormat = val
			default:
				return fmt.Errorf("invalid chart_format: %s (use png or svg)", val)
			}
		case "chart_width_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for chart_width_in: %v", val)
			}
			cfg.ChartWidthIn = f
		case "chart_height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for chart_height_in: %v", val)
			}
			cfg.ChartHeightIn = f
		case "top_countries":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_countries: %v", val)
			}
			cfg.TopCountries = i
		case "delimiter":
			if _, err := delimiterRune(val); err != nil {
				return fmt.Errorf("invalid delimiter: %s (use ','|';'|'tab')", val)
			}
			cfg.Delimiter = val
		case "na_values":
			cfg.NAValues = strings.Split(val, ",")
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
