package cmd

import (
	"fmt"

	"github.com/KaramelBytes/wealthloom-cli/internal/charts"
	"github.com/spf13/cobra"
)

var (
	chartsOutDir       string
	chartsFormat       string
	chartsTopCountries int
	chartsDelimiter    string
)

var chartsCmd = &cobra.Command{
	Use:   "charts <file>",
	Short: "Render the four dataset charts",
	Long:  `Charts loads a CSV dataset, imputes missing values, and renders the industry pie, net-worth box plot, countries bar chart, and net-worth vs age scatter as image files.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, rep, err := loadAndClean(args[0], chartsDelimiter)
		if err != nil {
			return err
		}
		if debug {
			printFills(rep)
		}
		written, err := charts.RenderAll(t, chartOptions(chartsOutDir, chartsFormat, chartsTopCountries))
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Printf("✓ Wrote %s\n", path)
		}
		if len(written) == 0 {
			fmt.Println("⚠ No charts written (required columns missing)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVar(&chartsOutDir, "out-dir", "", "directory for chart files (default from config)")
	chartsCmd.Flags().StringVar(&chartsFormat, "format", "", "chart format: png | svg")
	chartsCmd.Flags().IntVar(&chartsTopCountries, "top-countries", 0, "N for the countries-by-count bar chart (default 10)")
	chartsCmd.Flags().StringVar(&chartsDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
}
