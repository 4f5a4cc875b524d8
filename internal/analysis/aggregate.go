package analysis

import (
	"sort"

	"eva-analytics/internal/model"
)

// Measure extracts one numeric field from a record.
type Measure func(model.Record) float64

// Key extracts the grouping label from a record.
type Key func(model.Record) string

// Common measures.
var (
	SownHa      = func(r model.Record) float64 { return r.SownHa }
	HarvestedHa = func(r model.Record) float64 { return r.HarvestedHa }
	ProductionT = func(r model.Record) float64 { return r.ProductionT }
	YieldTHa    = func(r model.Record) float64 { return r.YieldTHa }
)

// Common keys.
var (
	ByDepartment   = func(r model.Record) string { return r.Department }
	ByMunicipality = func(r model.Record) string { return r.Municipality }
	BySystem       = func(r model.Record) string { return r.System }
	ByPeriod       = func(r model.Record) string { return r.Period }
)

// GroupSum totals m per group. Missing values contribute nothing to
// the total; Count reports every row of the group regardless. Groups
// appear in the order they are first seen in the view.
func GroupSum(v model.View, key Key, m Measure) []model.SummaryRow {
	var rows []model.SummaryRow
	index := make(map[string]int)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		k := key(r)
		j, ok := index[k]
		if !ok {
			j = len(rows)
			index[k] = j
			rows = append(rows, model.SummaryRow{Key: k})
		}
		rows[j].Count++
		if val := m(r); !model.Missing(val) {
			rows[j].Value += val
		}
	}
	return rows
}

// GroupMean averages m per group over its non-missing values only:
// a missing value is excluded from both the numerator and the
// denominator. Groups whose every value is missing are dropped.
func GroupMean(v model.View, key Key, m Measure) []model.SummaryRow {
	type acc struct {
		sum  float64
		n    int
		rows int
	}
	var order []string
	accs := make(map[string]*acc)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		k := key(r)
		a, ok := accs[k]
		if !ok {
			a = &acc{}
			accs[k] = a
			order = append(order, k)
		}
		a.rows++
		if val := m(r); !model.Missing(val) {
			a.sum += val
			a.n++
		}
	}
	var rows []model.SummaryRow
	for _, k := range order {
		a := accs[k]
		if a.n == 0 {
			continue
		}
		rows = append(rows, model.SummaryRow{Key: k, Value: a.sum / float64(a.n), Count: a.rows})
	}
	return rows
}

// SortDesc orders rows by value descending. Equal values fall back to
// the group key ascending so rankings are deterministic.
func SortDesc(rows []model.SummaryRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Key < rows[j].Key
	})
}

// SortAsc orders rows by value ascending with the same key tie-break.
func SortAsc(rows []model.SummaryRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Key < rows[j].Key
	})
}

// TopN returns the n largest groups by value. When fewer than n
// groups exist, every group is returned.
func TopN(rows []model.SummaryRow, n int) []model.SummaryRow {
	sorted := append([]model.SummaryRow(nil), rows...)
	SortDesc(sorted)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// BottomN returns the n smallest groups by value.
func BottomN(rows []model.SummaryRow, n int) []model.SummaryRow {
	sorted := append([]model.SummaryRow(nil), rows...)
	SortAsc(sorted)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// ConcentrationPct reports which share of the grand total the n
// largest groups hold, as a percentage. A zero grand total yields 0.
func ConcentrationPct(rows []model.SummaryRow, n int) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.Value
	}
	if total == 0 {
		return 0
	}
	top := 0.0
	for _, r := range TopN(rows, n) {
		top += r.Value
	}
	return top / total * 100
}

// MeanValue averages the Value column of rows. Empty input yields 0.
func MeanValue(rows []model.SummaryRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rows {
		sum += r.Value
	}
	return sum / float64(len(rows))
}
