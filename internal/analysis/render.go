package analysis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Render prints the summary as labeled text blocks in a fixed order:
// summary statistics, correlation matrix, skewness, kurtosis.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintln(w, "Summary Statistics:")
	if len(s.Numeric) == 0 {
		fmt.Fprintln(w, "(no numeric columns)")
	} else {
		tw := tablewriter.NewWriter(w)
		tw.SetAutoFormatHeaders(false)
		tw.SetHeader(append([]string{"stat"}, numericNames(s)...))
		rows := []struct {
			label string
			pick  func(ColumnStats) string
		}{
			{"count", func(c ColumnStats) string { return strconv.Itoa(c.Count) }},
			{"mean", func(c ColumnStats) string { return fmtFloat(c.Mean) }},
			{"std", func(c ColumnStats) string { return fmtFloat(c.Std) }},
			{"min", func(c ColumnStats) string { return fmtFloat(c.Min) }},
			{"25%", func(c ColumnStats) string { return fmtFloat(c.Q25) }},
			{"50%", func(c ColumnStats) string { return fmtFloat(c.Median) }},
			{"75%", func(c ColumnStats) string { return fmtFloat(c.Q75) }},
			{"max", func(c ColumnStats) string { return fmtFloat(c.Max) }},
		}
		for _, row := range rows {
			cells := []string{row.label}
			for _, c := range s.Numeric {
				cells = append(cells, row.pick(c))
			}
			tw.Append(cells)
		}
		tw.Render()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Correlation Matrix:")
	if len(s.Corr.Columns) > 0 {
		tw := tablewriter.NewWriter(w)
		tw.SetAutoFormatHeaders(false)
		tw.SetHeader(append([]string{""}, s.Corr.Columns...))
		for i, name := range s.Corr.Columns {
			cells := []string{name}
			for j := range s.Corr.Columns {
				cells = append(cells, fmt.Sprintf("%.3f", s.Corr.Values[i][j]))
			}
			tw.Append(cells)
		}
		tw.Render()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Skewness:")
	renderMoments(w, s.Skewness)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Kurtosis:")
	renderMoments(w, s.Kurtosis)
}

func renderMoments(w io.Writer, m MomentSeries) {
	width := 0
	for _, name := range m.Columns {
		if len(name) > width {
			width = len(name)
		}
	}
	for i, name := range m.Columns {
		fmt.Fprintf(w, "%-*s  %s\n", width, name, fmtFloat(m.Values[i]))
	}
}

func numericNames(s *Summary) []string {
	names := make([]string, len(s.Numeric))
	for i, c := range s.Numeric {
		names[i] = c.Name
	}
	return names
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
