package analysis

import (
	"sort"

	"eva-analytics/internal/model"
)

// YearSeries computes the yearly trend: per calendar year the area
// and production totals plus the mean yield, ordered oldest first.
func YearSeries(v model.View) []model.YearPoint {
	type acc struct {
		point  model.YearPoint
		ySum   float64
		yCount int
	}
	accs := make(map[int]*acc)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		a, ok := accs[r.Year]
		if !ok {
			a = &acc{point: model.YearPoint{Year: r.Year}}
			accs[r.Year] = a
		}
		if !model.Missing(r.SownHa) {
			a.point.SownHa += r.SownHa
		}
		if !model.Missing(r.HarvestedHa) {
			a.point.HarvestedHa += r.HarvestedHa
		}
		if !model.Missing(r.ProductionT) {
			a.point.ProductionT += r.ProductionT
		}
		if !model.Missing(r.YieldTHa) {
			a.ySum += r.YieldTHa
			a.yCount++
		}
	}
	points := make([]model.YearPoint, 0, len(accs))
	for _, a := range accs {
		if a.yCount > 0 {
			a.point.MeanYield = a.ySum / float64(a.yCount)
		}
		points = append(points, a.point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// YearPeriodTab pivots production totals into a year-by-period table.
// Years ascend, periods sort alphabetically, and combinations never
// seen in the data stay nil rather than zero.
func YearPeriodTab(v model.View) model.CrossTab {
	type cellKey struct {
		year   int
		period string
	}
	sums := make(map[cellKey]float64)
	years := make(map[int]bool)
	periods := make(map[string]bool)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		years[r.Year] = true
		periods[r.Period] = true
		k := cellKey{r.Year, r.Period}
		if _, ok := sums[k]; !ok {
			sums[k] = 0
		}
		if !model.Missing(r.ProductionT) {
			sums[k] += r.ProductionT
		}
	}

	tab := model.CrossTab{}
	for y := range years {
		tab.Years = append(tab.Years, y)
	}
	sort.Ints(tab.Years)
	for p := range periods {
		tab.Periods = append(tab.Periods, p)
	}
	sort.Strings(tab.Periods)

	tab.Cells = make([][]*float64, len(tab.Years))
	for i, y := range tab.Years {
		tab.Cells[i] = make([]*float64, len(tab.Periods))
		for j, p := range tab.Periods {
			if sum, ok := sums[cellKey{y, p}]; ok {
				val := sum
				tab.Cells[i][j] = &val
			}
		}
	}
	return tab
}

// PeriodShare totals production per agricultural period, largest
// share first.
func PeriodShare(v model.View) []model.SummaryRow {
	rows := GroupSum(v, ByPeriod, ProductionT)
	SortDesc(rows)
	return rows
}
