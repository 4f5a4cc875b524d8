package model

import "math"

// Record is one normalized row of the municipal agricultural survey.
// Numeric fields use NaN to represent a value that was absent in the
// source file, so that aggregations can skip it explicitly.
type Record struct {
	Department   string
	Municipality string
	CropGroup    string
	Crop         string
	System       string
	Year         int
	Period       string
	SownHa       float64
	HarvestedHa  float64
	ProductionT  float64
	YieldTHa     float64
}

// Missing reports whether v stands for an absent source value.
func Missing(v float64) bool {
	return math.IsNaN(v)
}

// Columns lists the canonical column identifiers in export order.
var Columns = []string{
	"department",
	"municipality",
	"crop_group",
	"crop",
	"system",
	"year",
	"period",
	"sown_ha",
	"harvested_ha",
	"production_t",
	"yield_t_ha",
}
