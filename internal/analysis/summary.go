package analysis

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/wealthloom-cli/internal/dataset"
)

// ColumnStats holds descriptive statistics for one numeric column.
type ColumnStats struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// MomentSeries is a per-column series of a single statistic, such as
// skewness or excess kurtosis.
type MomentSeries struct {
	Columns []string
	Values  []float64
}

// Summary is the structured result of summarizing a table. Presentation is
// a separate concern; see Render.
type Summary struct {
	Rows     int
	Numeric  []ColumnStats
	Corr     CorrMatrix
	Skewness MomentSeries
	Kurtosis MomentSeries
}

// Describe computes descriptive statistics, a Pearson correlation matrix,
// skewness, and excess kurtosis over the table's numeric columns. Missing
// values are ignored; correlations use pairwise complete observations.
// A table without numeric columns yields an empty (non-nil) Summary.
func Describe(t dataset.Table) *Summary {
	sum := &Summary{Rows: t.Frame.Nrow()}

	var names []string
	var columns [][]float64 // row-aligned, NaN marks missing
	for _, name := range t.Frame.Names() {
		if t.Schema[name] != dataset.KindNumeric {
			continue
		}
		vals := t.Frame.Col(name).Float()
		names = append(names, name)
		columns = append(columns, vals)

		present := dropNaN(vals)
		cs := ColumnStats{Name: name, Count: len(present)}
		if len(present) > 0 {
			sample := moremath.Sample{Xs: present}
			sample.Sort()
			cs.Mean = sample.Mean()
			cs.Std = stat.StdDev(present, nil)
			cs.Min = sample.Xs[0]
			cs.Max = sample.Xs[len(sample.Xs)-1]
			cs.Q25 = sample.Quantile(0.25)
			cs.Median = sample.Quantile(0.5)
			cs.Q75 = sample.Quantile(0.75)
		}
		sum.Numeric = append(sum.Numeric, cs)

		sum.Skewness.Columns = append(sum.Skewness.Columns, name)
		sum.Skewness.Values = append(sum.Skewness.Values, stat.Skew(present, nil))
		sum.Kurtosis.Columns = append(sum.Kurtosis.Columns, name)
		sum.Kurtosis.Values = append(sum.Kurtosis.Values, stat.ExKurtosis(present, nil))
	}

	if len(names) > 0 {
		sum.Corr = correlationMatrix(names, columns)
	}
	return sum
}

func correlationMatrix(names []string, columns [][]float64) CorrMatrix {
	n := len(names)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			xs, ys := pairComplete(columns[i], columns[j])
			r := 0.0
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
			}
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}
			if r > 1 {
				r = 1
			} else if r < -1 {
				r = -1
			}
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return CorrMatrix{Columns: names, Values: mat}
}

// pairComplete keeps only the rows where both columns are present.
func pairComplete(a, b []float64) (xs, ys []float64) {
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	return xs, ys
}

func dropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
