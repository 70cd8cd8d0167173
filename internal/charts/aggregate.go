package charts

import (
	"math"
	"sort"
)

// CategoryCount is a labeled count or sum used by the top-N helpers.
type CategoryCount struct {
	Value string
	Count float64
}

// CountByColumn tallies rows per distinct value and returns the tallies in
// descending count order. Ties keep first-encountered order.
func CountByColumn(vals []string) []CategoryCount {
	idx := make(map[string]int)
	var out []CategoryCount
	for _, v := range vals {
		i, ok := idx[v]
		if !ok {
			i = len(out)
			idx[v] = i
			out = append(out, CategoryCount{Value: v})
		}
		out[i].Count++
	}
	sortDesc(out)
	return out
}

// SumByColumn sums values per distinct key and returns the sums in
// descending order. NaN values contribute nothing, so a key whose values
// are all NaN still appears with sum 0. Ties keep first-encountered order.
func SumByColumn(keys []string, values []float64) []CategoryCount {
	idx := make(map[string]int)
	var out []CategoryCount
	for i, k := range keys {
		j, ok := idx[k]
		if !ok {
			j = len(out)
			idx[k] = j
			out = append(out, CategoryCount{Value: k})
		}
		if v := values[i]; !math.IsNaN(v) {
			out[j].Count += v
		}
	}
	sortDesc(out)
	return out
}

// TopN returns the first n entries of a descending-sorted tally.
func TopN(sorted []CategoryCount, n int) []CategoryCount {
	if n >= len(sorted) {
		n = len(sorted)
	}
	out := make([]CategoryCount, n)
	copy(out, sorted[:n])
	return out
}

// TopNWithOther keeps the top n entries and collapses the remainder into a
// single "Other" bucket, so the result always sums to the input total.
func TopNWithOther(sorted []CategoryCount, n int) []CategoryCount {
	out := TopN(sorted, n)
	var other float64
	for _, c := range sorted[len(out):] {
		other += c.Count
	}
	if other > 0 {
		out = append(out, CategoryCount{Value: "Other", Count: other})
	}
	return out
}

func sortDesc(counts []CategoryCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}
