package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
)

func testView() model.View {
	return model.NewView([]model.Record{
		{Department: "TOLIMA", Municipality: "IBAGUÉ", Year: 2019, Period: "2019A", ProductionT: 100},
		{Department: "TOLIMA", Municipality: "ESPINAL", Year: 2020, Period: "2020A", ProductionT: 200},
		{Department: "META", Municipality: "VILLAVICENCIO", Year: 2020, Period: "2020B", ProductionT: 300},
		{Department: "HUILA", Municipality: "CAMPOALEGRE", Year: 2021, Period: "2021A", ProductionT: 400},
	})
}

func intp(v int) *int { return &v }

func TestApplyNoFiltersKeepsEverything(t *testing.T) {
	v, err := Apply(testView(), model.Selection{})
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
}

func TestApplyDepartmentMultiSelect(t *testing.T) {
	sel := model.Selection{Departments: []string{"TOLIMA", "META"}}
	v, err := Apply(testView(), sel)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
}

func TestApplyCombinesDimensionsConjunctively(t *testing.T) {
	sel := model.Selection{Departments: []string{"TOLIMA", "META"}, Year: intp(2020)}
	v, err := Apply(testView(), sel)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	assert.Equal(t, "ESPINAL", v.At(0).Municipality)
	assert.Equal(t, "VILLAVICENCIO", v.At(1).Municipality)
}

func TestApplyEmptyResult(t *testing.T) {
	sel := model.Selection{Departments: []string{"HUILA"}, Year: intp(2019)}
	_, err := Apply(testView(), sel)
	require.Error(t, err)

	var empty *model.EmptyResultError
	require.ErrorAs(t, err, &empty)
	assert.Contains(t, empty.Error(), "no records match")
}

func TestOptionsSortedValues(t *testing.T) {
	opts := Options(testView())
	assert.Equal(t, []string{"HUILA", "META", "TOLIMA"}, opts.Departments)
	assert.Equal(t, []int{2021, 2020, 2019}, opts.Years, "years should list newest first")
	assert.Len(t, opts.Municipalities, 4)
}

func TestMunicipalitiesCascade(t *testing.T) {
	munis := Municipalities(testView(), "TOLIMA")
	assert.Equal(t, []string{"ESPINAL", "IBAGUÉ"}, munis)

	all := Municipalities(testView(), "")
	assert.Len(t, all, 4)
}

func TestNormalizeClearsStaleMunicipality(t *testing.T) {
	sel := model.Selection{Department: "META", Municipality: "IBAGUÉ"}
	out := Normalize(testView(), sel)
	assert.Empty(t, out.Municipality, "municipality outside the department should reset")

	sel = model.Selection{Department: "TOLIMA", Municipality: "IBAGUÉ"}
	out = Normalize(testView(), sel)
	assert.Equal(t, "IBAGUÉ", out.Municipality)
}
