package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/wealthloom-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "wealthloom",
	Short: "WealthLoom CLI: clean, summarize, and chart billionaire wealth datasets",
	Long:  `WealthLoom is a CLI tool that loads a billionaires CSV dataset, imputes missing values (median for numeric columns, mode for categorical ones), prints descriptive statistics, and renders pie, box, bar, and scatter charts.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.wealthloom/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
