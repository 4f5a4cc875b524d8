package analysis

import "eva-analytics/internal/model"

// Lorenz builds the Lorenz curve of how a total distributes across
// groups. Groups sort ascending by value; point k holds the share of
// the total owned by the k smallest groups. The curve starts at the
// origin and ends at (100, 100), and under any inequality it runs on
// or below the equality diagonal. A non-positive total has no curve.
func Lorenz(rows []model.SummaryRow) []model.LorenzPoint {
	if len(rows) == 0 {
		return nil
	}
	sorted := append([]model.SummaryRow(nil), rows...)
	SortAsc(sorted)

	total := 0.0
	for _, r := range sorted {
		total += r.Value
	}
	if total <= 0 {
		return nil
	}

	n := float64(len(sorted))
	points := make([]model.LorenzPoint, 0, len(sorted)+1)
	points = append(points, model.LorenzPoint{})
	cum := 0.0
	for i, r := range sorted {
		cum += r.Value
		points = append(points, model.LorenzPoint{
			GroupPct:      float64(i+1) / n * 100,
			CumulativePct: cum / total * 100,
		})
	}
	return points
}
