package dataset

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Fill records the imputation applied to one column.
type Fill struct {
	Column string
	Kind   Kind
	Count  int
	// NumValue is the median used for numeric columns; StrValue the mode
	// used for categorical columns.
	NumValue float64
	StrValue string
}

// FillReport lists the imputations performed by Clean, in column order.
type FillReport struct {
	Fills []Fill
}

// Total returns the number of cells that were filled.
func (r FillReport) Total() int {
	n := 0
	for _, f := range r.Fills {
		n += f.Count
	}
	return n
}

// Clean returns a new table with no missing values: numeric columns have
// missing entries replaced by the column median computed over present
// values, categorical columns by the most frequent present value (ties
// broken by first occurrence). The input table is not modified.
//
// A column with missing entries but no present values cannot be imputed
// and makes Clean fail.
func Clean(t Table) (Table, FillReport, error) {
	var rep FillReport
	cleaned := make([]series.Series, 0, t.Frame.Ncol())
	for _, name := range t.Frame.Names() {
		col := t.Frame.Col(name)
		mask := col.IsNaN()
		missing := 0
		for _, m := range mask {
			if m {
				missing++
			}
		}
		if missing == 0 {
			cleaned = append(cleaned, col)
			continue
		}
		if missing == col.Len() {
			return Table{}, FillReport{}, fmt.Errorf("column %q has no present values to impute from", name)
		}
		switch t.Schema[name] {
		case KindNumeric:
			vals := col.Float()
			med := maskedMedian(vals, mask)
			filled := make([]float64, len(vals))
			for i, v := range vals {
				if mask[i] {
					filled[i] = med
				} else {
					filled[i] = v
				}
			}
			// An imputed median may be fractional, so the column
			// materializes as Float even if it was detected as Int.
			cleaned = append(cleaned, series.New(filled, series.Float, name))
			rep.Fills = append(rep.Fills, Fill{Column: name, Kind: KindNumeric, Count: missing, NumValue: med})
		default:
			recs := col.Records()
			mode := maskedMode(recs, mask)
			filled := make([]string, len(recs))
			for i, v := range recs {
				if mask[i] {
					filled[i] = mode
				} else {
					filled[i] = v
				}
			}
			cleaned = append(cleaned, series.New(filled, col.Type(), name))
			rep.Fills = append(rep.Fills, Fill{Column: name, Kind: KindCategorical, Count: missing, StrValue: mode})
		}
	}
	df := dataframe.New(cleaned...)
	if df.Err != nil {
		return Table{}, FillReport{}, fmt.Errorf("rebuild frame: %w", df.Err)
	}
	return Table{Frame: df, Schema: resolveSchema(df)}, rep, nil
}

// maskedMedian computes the median of the unmasked values. Even-length
// inputs average the two middle values.
func maskedMedian(vals []float64, mask []bool) float64 {
	present := make([]float64, 0, len(vals))
	for i, v := range vals {
		if !mask[i] {
			present = append(present, v)
		}
	}
	sort.Float64s(present)
	n := len(present)
	if n%2 == 1 {
		return present[n/2]
	}
	return (present[n/2-1] + present[n/2]) / 2
}

// maskedMode returns the most frequent unmasked value; ties go to the value
// seen first.
func maskedMode(recs []string, mask []bool) string {
	counts := make(map[string]int)
	first := make(map[string]int)
	for i, v := range recs {
		if mask[i] {
			continue
		}
		if _, ok := counts[v]; !ok {
			first[v] = i
		}
		counts[v]++
	}
	best := ""
	bestCount := -1
	bestFirst := len(recs)
	for v, c := range counts {
		if c > bestCount || (c == bestCount && first[v] < bestFirst) {
			best, bestCount, bestFirst = v, c, first[v]
		}
	}
	return best
}
