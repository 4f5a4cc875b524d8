package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
)

func TestEfficiencyByDepartment(t *testing.T) {
	v := model.NewView([]model.Record{
		{Department: "A", SownHa: 100, HarvestedHa: 80, ProductionT: 400},
		{Department: "A", SownHa: 100, HarvestedHa: 70, ProductionT: 350},
		{Department: "B", SownHa: 50, HarvestedHa: 55, ProductionT: 200},
		{Department: "C", SownHa: 0, HarvestedHa: 0},
	})

	rows := EfficiencyByDepartment(v)
	require.Len(t, rows, 2, "a department with nothing sown is excluded")

	// A lost the most area, so it ranks first.
	assert.Equal(t, "A", rows[0].Department)
	assert.Equal(t, 200.0, rows[0].SownHa)
	assert.Equal(t, 50.0, rows[0].LossHa)
	assert.InDelta(t, 75.0, rows[0].Efficiency, 1e-9)

	assert.Equal(t, "B", rows[1].Department)
	assert.InDelta(t, 110.0, rows[1].Efficiency, 1e-9, "over-harvest is reported as computed")
	assert.Equal(t, -5.0, rows[1].LossHa)
}

func TestNationalEfficiencyUndefined(t *testing.T) {
	v := model.NewView([]model.Record{
		{Department: "A", SownHa: 0, HarvestedHa: 0},
	})
	_, err := NationalEfficiency(v)
	require.Error(t, err)

	var undefined *model.UndefinedRatioError
	assert.ErrorAs(t, err, &undefined)
}

func TestNationalEfficiency(t *testing.T) {
	v := model.NewView([]model.Record{
		{SownHa: 100, HarvestedHa: 90},
		{SownHa: 100, HarvestedHa: 60},
	})
	eff, err := NationalEfficiency(v)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, eff, 1e-9)
}
