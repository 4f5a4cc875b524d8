package analysis

import (
	"sort"

	"eva-analytics/internal/model"
)

// ComputeDashboard derives every figure of the dashboard from one
// filtered view. The caller guarantees a non-empty view; filtering
// reports an EmptyResultError before anything gets here.
func ComputeDashboard(v model.View) *model.Dashboard {
	d := &model.Dashboard{}

	deptProduction := GroupSum(v, ByDepartment, ProductionT)
	SortDesc(deptProduction)
	d.DepartmentRanking = deptProduction

	deptYield := GroupMean(v, ByDepartment, YieldTHa)
	SortDesc(deptYield)
	d.DepartmentYield = deptYield

	d.Metrics = metrics(v, deptProduction)

	d.YearSeries = YearSeries(v)
	d.TopMunicipalities = topMunicipalities(v, 10)
	d.Top5DepartmentPct = ConcentrationPct(deptProduction, 5)

	muniProduction := GroupSum(v, ByMunicipality, ProductionT)
	d.Top10MunicipioPct = ConcentrationPct(muniProduction, 10)

	d.Efficiency = EfficiencyByDepartment(v)

	systemProduction := GroupSum(v, BySystem, ProductionT)
	SortDesc(systemProduction)
	d.SystemProduction = systemProduction

	systemYield := GroupMean(v, BySystem, YieldTHa)
	SortDesc(systemYield)
	d.SystemYield = systemYield

	d.PeriodShare = PeriodShare(v)
	d.YearPeriod = YearPeriodTab(v)
	d.Correlation = Correlation(v)

	topDepts := make([]string, 0, 10)
	for _, r := range TopN(deptProduction, 10) {
		topDepts = append(topDepts, r.Key)
	}
	d.YieldByDepartment = YieldBoxByDepartment(v, topDepts)

	d.YieldHistogram = Histogram(v, YieldTHa, 30)
	d.MunicipioHistogram = HistogramOfRows(muniProduction, 30)

	top := TopN(muniProduction, 10)
	bottom := BottomN(muniProduction, 10)
	d.TopBottom = model.Comparison{
		Top:        top,
		Bottom:     bottom,
		TopMean:    MeanValue(top),
		BottomMean: MeanValue(bottom),
	}

	d.Lorenz = Lorenz(muniProduction)
	return d
}

func metrics(v model.View, deptProduction []model.SummaryRow) model.Metrics {
	m := model.Metrics{Records: v.Len()}

	depts := make(map[string]bool)
	munis := make(map[string]bool)
	yieldSum, yieldN := 0.0, 0
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		depts[r.Department] = true
		munis[r.Municipality] = true
		if i == 0 || r.Year < m.YearMin {
			m.YearMin = r.Year
		}
		if i == 0 || r.Year > m.YearMax {
			m.YearMax = r.Year
		}
		if !model.Missing(r.SownHa) {
			m.TotalSownHa += r.SownHa
		}
		if !model.Missing(r.HarvestedHa) {
			m.TotalHarvestedHa += r.HarvestedHa
		}
		if !model.Missing(r.ProductionT) {
			m.TotalProductionT += r.ProductionT
		}
		if !model.Missing(r.YieldTHa) {
			yieldSum += r.YieldTHa
			yieldN++
		}
	}
	m.Departments = len(depts)
	m.Municipalities = len(munis)
	if yieldN > 0 {
		m.MeanYieldTHa = yieldSum / float64(yieldN)
	}
	if eff, err := NationalEfficiency(v); err == nil {
		m.NationalEfficiency = eff
	}
	if len(deptProduction) > 0 {
		m.LeadingDepartment = deptProduction[0].Key
	}
	muniProduction := GroupSum(v, ByMunicipality, ProductionT)
	if top := TopN(muniProduction, 1); len(top) > 0 {
		m.LeadingMunicipio = top[0].Key
	}
	return m
}

// topMunicipalities ranks municipalities by production and reports
// area and mean yield alongside. The department column carries the
// department that contributes most of the municipality's rows, since
// homonymous municipalities exist across departments in the survey.
func topMunicipalities(v model.View, n int) []model.MunicipalityRow {
	type acc struct {
		production float64
		sown       float64
		yieldSum   float64
		yieldN     int
		depts      map[string]int
	}
	var order []string
	accs := make(map[string]*acc)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		a, ok := accs[r.Municipality]
		if !ok {
			a = &acc{depts: make(map[string]int)}
			accs[r.Municipality] = a
			order = append(order, r.Municipality)
		}
		a.depts[r.Department]++
		if !model.Missing(r.ProductionT) {
			a.production += r.ProductionT
		}
		if !model.Missing(r.SownHa) {
			a.sown += r.SownHa
		}
		if !model.Missing(r.YieldTHa) {
			a.yieldSum += r.YieldTHa
			a.yieldN++
		}
	}

	rows := make([]model.MunicipalityRow, 0, len(order))
	for _, muni := range order {
		a := accs[muni]
		row := model.MunicipalityRow{
			Municipality: muni,
			ProductionT:  a.production,
			SownHa:       a.sown,
		}
		best := -1
		for dept, count := range a.depts {
			if count > best || (count == best && dept < row.Department) {
				best = count
				row.Department = dept
			}
		}
		if a.yieldN > 0 {
			row.MeanYield = a.yieldSum / float64(a.yieldN)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductionT != rows[j].ProductionT {
			return rows[i].ProductionT > rows[j].ProductionT
		}
		return rows[i].Municipality < rows[j].Municipality
	})
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
