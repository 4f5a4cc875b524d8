package analysis

import (
	"sort"

	"eva-analytics/internal/model"
)

// EfficiencyByDepartment relates harvested to sown area per
// department. Departments whose sown total is zero are left out
// entirely instead of reporting an undefined ratio. Ratios above 100
// are reported exactly as computed. Results order by lost area,
// largest loss first.
func EfficiencyByDepartment(v model.View) []model.EfficiencyRow {
	sown := GroupSum(v, ByDepartment, SownHa)
	harvested := GroupSum(v, ByDepartment, HarvestedHa)
	production := GroupSum(v, ByDepartment, ProductionT)

	harvestedBy := make(map[string]float64, len(harvested))
	for _, r := range harvested {
		harvestedBy[r.Key] = r.Value
	}
	productionBy := make(map[string]float64, len(production))
	for _, r := range production {
		productionBy[r.Key] = r.Value
	}

	var rows []model.EfficiencyRow
	for _, s := range sown {
		if s.Value == 0 {
			continue
		}
		h := harvestedBy[s.Key]
		rows = append(rows, model.EfficiencyRow{
			Department:  s.Key,
			SownHa:      s.Value,
			HarvestedHa: h,
			ProductionT: productionBy[s.Key],
			LossHa:      s.Value - h,
			Efficiency:  h / s.Value * 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LossHa != rows[j].LossHa {
			return rows[i].LossHa > rows[j].LossHa
		}
		return rows[i].Department < rows[j].Department
	})
	return rows
}

// NationalEfficiency is the overall harvested/sown percentage of the
// whole view, or an UndefinedRatioError when nothing was sown.
func NationalEfficiency(v model.View) (float64, error) {
	var sown, harvested float64
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		if !model.Missing(r.SownHa) {
			sown += r.SownHa
		}
		if !model.Missing(r.HarvestedHa) {
			harvested += r.HarvestedHa
		}
	}
	if sown == 0 {
		return 0, &model.UndefinedRatioError{Ratio: "harvested/sown", Group: "selection"}
	}
	return harvested / sown * 100, nil
}
