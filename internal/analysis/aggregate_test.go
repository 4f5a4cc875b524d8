package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
)

func TestGroupSumConservesTotal(t *testing.T) {
	v := model.NewView([]model.Record{
		{Department: "A", ProductionT: 10},
		{Department: "A", ProductionT: 15},
		{Department: "B", ProductionT: 25},
		{Department: "C", ProductionT: math.NaN()},
		{Department: "C", ProductionT: 50},
	})

	rows := GroupSum(v, ByDepartment, ProductionT)
	groupTotal := 0.0
	for _, r := range rows {
		groupTotal += r.Value
	}
	assert.Equal(t, 100.0, groupTotal, "group sums must add up to the observed total")
}

func TestGroupSumPreservesDiscoveryOrder(t *testing.T) {
	v := model.NewView([]model.Record{
		{Department: "B", ProductionT: 1},
		{Department: "A", ProductionT: 2},
		{Department: "B", ProductionT: 3},
	})

	rows := GroupSum(v, ByDepartment, ProductionT)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Key)
	assert.Equal(t, 4.0, rows[0].Value)
	assert.Equal(t, 2, rows[0].Count)
}

func TestGroupMeanExcludesMissing(t *testing.T) {
	v := model.NewView([]model.Record{
		{Department: "A", YieldTHa: 4},
		{Department: "A", YieldTHa: math.NaN()},
		{Department: "A", YieldTHa: 6},
		{Department: "B", YieldTHa: math.NaN()},
	})

	rows := GroupMean(v, ByDepartment, YieldTHa)
	require.Len(t, rows, 1, "a group with no observed values has no mean")
	assert.Equal(t, "A", rows[0].Key)
	assert.Equal(t, 5.0, rows[0].Value, "missing values leave the denominator too")
	assert.Equal(t, 3, rows[0].Count)
}

func TestTopNTieBreaksOnKey(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "Z", Value: 10},
		{Key: "A", Value: 10},
		{Key: "M", Value: 20},
	}
	top := TopN(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "M", top[0].Key)
	assert.Equal(t, "A", top[1].Key, "equal values rank alphabetically")
}

func TestConcentrationPct(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "A", Value: 100},
		{Key: "B", Value: 300},
	}
	assert.InDelta(t, 75.0, ConcentrationPct(rows, 1), 1e-9)
	assert.InDelta(t, 100.0, ConcentrationPct(rows, 2), 1e-9)
	assert.InDelta(t, 100.0, ConcentrationPct(rows, 10), 1e-9, "n beyond the group count covers everything")
}

func TestConcentrationPctMonotonic(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "A", Value: 5},
		{Key: "B", Value: 20},
		{Key: "C", Value: 35},
		{Key: "D", Value: 40},
	}
	prev := 0.0
	for n := 1; n <= len(rows); n++ {
		cur := ConcentrationPct(rows, n)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.InDelta(t, 100.0, prev, 1e-9)
}

func TestConcentrationPctZeroTotal(t *testing.T) {
	rows := []model.SummaryRow{{Key: "A", Value: 0}, {Key: "B", Value: 0}}
	assert.Equal(t, 0.0, ConcentrationPct(rows, 1))
}

func TestBottomN(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "A", Value: 30},
		{Key: "B", Value: 10},
		{Key: "C", Value: 20},
	}
	bottom := BottomN(rows, 2)
	require.Len(t, bottom, 2)
	assert.Equal(t, "B", bottom[0].Key)
	assert.Equal(t, "C", bottom[1].Key)
}
