package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
)

func dashboardFixture() model.View {
	return model.NewView([]model.Record{
		{Department: "TOLIMA", Municipality: "IBAGUÉ", System: "RIEGO", Year: 2019, Period: "2019A",
			SownHa: 100, HarvestedHa: 90, ProductionT: 450, YieldTHa: 5},
		{Department: "TOLIMA", Municipality: "ESPINAL", System: "RIEGO", Year: 2020, Period: "2020A",
			SownHa: 120, HarvestedHa: 110, ProductionT: 550, YieldTHa: 5},
		{Department: "META", Municipality: "VILLAVICENCIO", System: "SECANO", Year: 2020, Period: "2020B",
			SownHa: 200, HarvestedHa: 150, ProductionT: 300, YieldTHa: 2},
	})
}

func TestComputeDashboardMetrics(t *testing.T) {
	d := ComputeDashboard(dashboardFixture())

	m := d.Metrics
	assert.Equal(t, 3, m.Records)
	assert.Equal(t, 2, m.Departments)
	assert.Equal(t, 3, m.Municipalities)
	assert.Equal(t, 2019, m.YearMin)
	assert.Equal(t, 2020, m.YearMax)
	assert.Equal(t, 420.0, m.TotalSownHa)
	assert.Equal(t, 1300.0, m.TotalProductionT)
	assert.InDelta(t, 4.0, m.MeanYieldTHa, 1e-9)
	assert.Equal(t, "TOLIMA", m.LeadingDepartment)
	assert.Equal(t, "ESPINAL", m.LeadingMunicipio)
}

func TestComputeDashboardRankings(t *testing.T) {
	d := ComputeDashboard(dashboardFixture())

	require.Len(t, d.DepartmentRanking, 2)
	assert.Equal(t, "TOLIMA", d.DepartmentRanking[0].Key)
	assert.Equal(t, 1000.0, d.DepartmentRanking[0].Value)

	require.Len(t, d.TopMunicipalities, 3)
	assert.Equal(t, "ESPINAL", d.TopMunicipalities[0].Municipality)
	assert.Equal(t, "TOLIMA", d.TopMunicipalities[0].Department)

	assert.InDelta(t, 100.0, d.Top5DepartmentPct, 1e-9, "two departments fit entirely into the top five")
}

func TestComputeDashboardDistribution(t *testing.T) {
	d := ComputeDashboard(dashboardFixture())

	require.NotEmpty(t, d.Lorenz)
	last := d.Lorenz[len(d.Lorenz)-1]
	assert.InDelta(t, 100.0, last.CumulativePct, 1e-9)

	require.Len(t, d.Efficiency, 2)
	assert.Equal(t, "META", d.Efficiency[0].Department, "biggest loss leads the efficiency table")

	require.Len(t, d.SystemProduction, 2)
	assert.Equal(t, "RIEGO", d.SystemProduction[0].Key)

	assert.Equal(t, 3, d.Correlation.Rows)
}
