package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"eva-analytics/internal/model"
)

// correlationFields are the numeric columns entering the matrix, in
// display order.
var correlationFields = []string{"sown_ha", "harvested_ha", "production_t", "yield_t_ha"}

// Correlation computes the pairwise Pearson matrix over complete
// cases: a row enters only when all four numeric fields are present.
// With fewer than two complete rows no coefficient is defined and the
// matrix carries zeros off the diagonal.
func Correlation(v model.View) model.CorrelationMatrix {
	cols := make([][]float64, len(correlationFields))
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		vals := []float64{r.SownHa, r.HarvestedHa, r.ProductionT, r.YieldTHa}
		complete := true
		for _, val := range vals {
			if model.Missing(val) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for j, val := range vals {
			cols[j] = append(cols[j], val)
		}
	}

	n := len(cols[0])
	m := model.CorrelationMatrix{Fields: correlationFields, Rows: n}
	m.Values = make([][]float64, len(correlationFields))
	for i := range m.Values {
		m.Values[i] = make([]float64, len(correlationFields))
		m.Values[i][i] = 1
	}
	if n < 2 {
		return m
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			c := stat.Correlation(cols[i], cols[j], nil)
			if math.IsNaN(c) {
				c = 0
			}
			m.Values[i][j] = c
			m.Values[j][i] = c
		}
	}
	return m
}

// YieldBoxByDepartment builds the five-number yield summary for each
// of the given departments. Missing yields are skipped; a department
// without a single observed yield is dropped.
func YieldBoxByDepartment(v model.View, departments []string) []model.BoxStats {
	wanted := make(map[string]bool, len(departments))
	for _, d := range departments {
		wanted[d] = true
	}
	values := make(map[string][]float64)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		if wanted[r.Department] && !model.Missing(r.YieldTHa) {
			values[r.Department] = append(values[r.Department], r.YieldTHa)
		}
	}

	var stats []model.BoxStats
	for _, d := range departments {
		vals := values[d]
		if len(vals) == 0 {
			continue
		}
		sort.Float64s(vals)
		stats = append(stats, model.BoxStats{
			Key:    d,
			Min:    vals[0],
			Q1:     stat.Quantile(0.25, stat.Empirical, vals, nil),
			Median: stat.Quantile(0.5, stat.Empirical, vals, nil),
			Q3:     stat.Quantile(0.75, stat.Empirical, vals, nil),
			Max:    vals[len(vals)-1],
			Count:  len(vals),
		})
	}
	return stats
}

// Histogram buckets the non-missing values of m into bins equal-width
// buckets. The last bucket is closed on both ends so the maximum
// lands inside it.
func Histogram(v model.View, m Measure, bins int) []model.HistogramBin {
	var vals []float64
	for i := 0; i < v.Len(); i++ {
		if val := m(v.At(i)); !model.Missing(val) {
			vals = append(vals, val)
		}
	}
	return histogramOf(vals, bins)
}

// HistogramOfRows buckets the Value column of aggregated rows, used
// for distributions over group totals.
func HistogramOfRows(rows []model.SummaryRow, bins int) []model.HistogramBin {
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r.Value
	}
	return histogramOf(vals, bins)
}

func histogramOf(vals []float64, bins int) []model.HistogramBin {
	if len(vals) == 0 || bins <= 0 {
		return nil
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []model.HistogramBin{{Low: min, High: max, Count: len(vals)}}
	}
	width := (max - min) / float64(bins)
	out := make([]model.HistogramBin, bins)
	for i := range out {
		out[i].Low = min + float64(i)*width
		out[i].High = min + float64(i+1)*width
	}
	for _, v := range vals {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
