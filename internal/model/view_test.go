package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewWhereNarrowsWithoutCopying(t *testing.T) {
	records := []Record{
		{Department: "A", Year: 2019},
		{Department: "B", Year: 2020},
		{Department: "A", Year: 2020},
	}
	v := NewView(records)
	assert.Equal(t, 3, v.Len())

	narrowed := v.Where(func(r Record) bool { return r.Department == "A" })
	require.Equal(t, 2, narrowed.Len())
	assert.Equal(t, 2019, narrowed.At(0).Year)
	assert.Equal(t, 2020, narrowed.At(1).Year)

	// Narrowing a narrowed view composes.
	again := narrowed.Where(func(r Record) bool { return r.Year == 2020 })
	require.Equal(t, 1, again.Len())
	assert.Equal(t, "A", again.At(0).Department)
}

func TestViewRecordsMaterializes(t *testing.T) {
	v := NewView([]Record{{Department: "A"}, {Department: "B"}})
	out := v.Where(func(r Record) bool { return r.Department == "B" }).Records()
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Department)
}

func TestSelectionDescribe(t *testing.T) {
	year := 2020
	sel := Selection{Departments: []string{"META", "TOLIMA"}, Year: &year}
	assert.Equal(t, "departments=[META TOLIMA] year=2020", sel.Describe())
	assert.Equal(t, "no filters", Selection{}.Describe())
}
