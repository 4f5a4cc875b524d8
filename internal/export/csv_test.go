package export

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
	"eva-analytics/pkg/utils"
)

func TestFilename(t *testing.T) {
	day := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "cereal_filtered_20240131.csv", Filename("cereal", day))
	assert.Equal(t, "arroz_filtered_20240131.csv", Filename("arroz", day))
}

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []model.Record{
		{Department: "TOLIMA", Municipality: "IBAGUÉ", CropGroup: "CEREALES", Crop: "ARROZ",
			System: "RIEGO", Year: 2020, Period: "2020A",
			SownHa: 100.5, HarvestedHa: 90.25, ProductionT: 450.123456789, YieldTHa: 4.5},
		{Department: "META", Municipality: "VILLAVICENCIO", CropGroup: "CEREALES", Crop: "MAÍZ",
			System: "SECANO", Year: 2021, Period: "2021B",
			SownHa: 1e7, HarvestedHa: math.NaN(), ProductionT: 0.1, YieldTHa: math.NaN()},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, model.NewView(records)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one line per record")
	assert.Equal(t, model.Columns, rows[0])

	for i, rec := range records {
		row := rows[i+1]
		assert.Equal(t, rec.Department, row[0])
		assert.Equal(t, rec.Period, row[6])

		for col, want := range map[int]float64{7: rec.SownHa, 8: rec.HarvestedHa, 9: rec.ProductionT, 10: rec.YieldTHa} {
			got, err := utils.ParseDecimal(row[col])
			require.NoError(t, err)
			if model.Missing(want) {
				assert.True(t, model.Missing(got), "missing values stay empty cells")
			} else {
				assert.Equal(t, want, got, "numeric cells must survive the round trip exactly")
			}
		}
	}
}
