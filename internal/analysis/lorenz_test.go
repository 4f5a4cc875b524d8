package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
)

func TestLorenzEndpoints(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "A", Value: 60},
		{Key: "B", Value: 10},
		{Key: "C", Value: 30},
	}
	points := Lorenz(rows)
	require.Len(t, points, 4, "n groups yield n+1 points including the origin")

	assert.Equal(t, 0.0, points[0].GroupPct)
	assert.Equal(t, 0.0, points[0].CumulativePct)
	assert.InDelta(t, 100.0, points[len(points)-1].GroupPct, 1e-9)
	assert.InDelta(t, 100.0, points[len(points)-1].CumulativePct, 1e-9)
}

func TestLorenzRunsBelowDiagonal(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "A", Value: 1},
		{Key: "B", Value: 2},
		{Key: "C", Value: 7},
		{Key: "D", Value: 90},
	}
	for _, p := range Lorenz(rows) {
		assert.LessOrEqual(t, p.CumulativePct, p.GroupPct+1e-9,
			"cumulative share can never exceed the equality diagonal")
	}
}

func TestLorenzAscendingCumulative(t *testing.T) {
	rows := []model.SummaryRow{
		{Key: "A", Value: 10},
		{Key: "B", Value: 30},
		{Key: "C", Value: 60},
	}
	points := Lorenz(rows)
	assert.InDelta(t, 10.0, points[1].CumulativePct, 1e-9)
	assert.InDelta(t, 40.0, points[2].CumulativePct, 1e-9)
	assert.InDelta(t, 100.0, points[3].CumulativePct, 1e-9)
}

func TestLorenzDegenerateTotals(t *testing.T) {
	assert.Nil(t, Lorenz(nil))
	assert.Nil(t, Lorenz([]model.SummaryRow{{Key: "A", Value: 0}}))
}
