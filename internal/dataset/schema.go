package dataset

import (
	"eva-analytics/internal/model"
	"eva-analytics/pkg/utils"
)

// sourceColumns maps the cleaned source header title of each required
// column to its canonical identifier. The survey publishes titles with
// stray line breaks and double spaces, so matching happens after
// utils.CleanHeader.
var sourceColumns = map[string]string{
	"DEPARTAMENTO":     "department",
	"MUNICIPIO":        "municipality",
	"GRUPO DE CULTIVO": "crop_group",
	"CULTIVO":          "crop",
	"DESAGREGACIÓN REGIONAL Y/O SISTEMA PRODUCTIVO": "system",
	"AÑO":                 "year",
	"PERIODO":             "period",
	"Área Sembrada (ha)":  "sown_ha",
	"Área Cosechada (ha)": "harvested_ha",
	"Producción (t)":      "production_t",
	"Rendimiento (t/ha)":  "yield_t_ha",
}

// schema holds, for one parsed file, the position of every canonical
// column in the raw record slice.
type schema map[string]int

// resolveSchema matches a raw header row against the required survey
// columns. Every required column must be present, otherwise the file
// is rejected with a DataFormatError listing everything missing.
func resolveSchema(source string, header []string) (schema, error) {
	pos := make(schema, len(sourceColumns))
	for i, raw := range header {
		if id, ok := sourceColumns[utils.CleanHeader(raw)]; ok {
			pos[id] = i
		}
	}
	var missing []string
	for _, id := range model.Columns {
		if _, ok := pos[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &model.DataFormatError{Source: source, Missing: missing}
	}
	return pos, nil
}
