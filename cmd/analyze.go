package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/KaramelBytes/wealthloom-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	anaOutputPath string
	anaDelimiter  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Clean a dataset and print descriptive statistics",
	Long:  `Analyze loads a CSV dataset, imputes missing values, and prints summary statistics, a correlation matrix, and skewness/kurtosis for the numeric columns.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, rep, err := loadAndClean(args[0], anaDelimiter)
		if err != nil {
			return err
		}
		if debug {
			printFills(rep)
		}
		sum := analysis.Describe(t)
		if anaOutputPath != "" {
			var buf bytes.Buffer
			sum.Render(&buf)
			if err := os.WriteFile(anaOutputPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote statistics to %s\n", anaOutputPath)
			return nil
		}
		sum.Render(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write statistics (text)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
}
