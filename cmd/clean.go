package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/wealthloom-cli/internal/utils"
)

var (
	cleanOutputPath string
	cleanDelimiter  string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Impute missing values and write the cleaned CSV",
	Long:  `Clean loads a CSV dataset, fills missing numeric cells with the column median and missing categorical cells with the column mode, and writes the cleaned table to a new CSV file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		t, rep, err := loadAndClean(path, cleanDelimiter)
		if err != nil {
			return err
		}
		printFills(rep)

		out := cleanOutputPath
		if out == "" {
			base := strings.TrimSuffix(path, filepath.Ext(path))
			out = base + ".cleaned.csv"
		}
		var buf bytes.Buffer
		if err := t.WriteCSV(&buf); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote cleaned dataset to %s (%d cells filled)\n", out, rep.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutputPath, "output", "o", "", "path for the cleaned CSV (default <file>.cleaned.csv)")
	cleanCmd.Flags().StringVar(&cleanDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
}
