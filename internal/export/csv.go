package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"eva-analytics/internal/model"
	"eva-analytics/pkg/utils"
)

// Filename builds the download name for a filtered extract, stamped
// with the generation date: cereal_filtered_20240131.csv.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_filtered_%s.csv", prefix, now.Format("20060102"))
}

// WriteCSV streams the visible rows of v as comma-delimited CSV.
// Numeric cells are formatted so that re-parsing them recovers the
// exact value; missing values stay empty.
func WriteCSV(w io.Writer, v model.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.Columns); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		row := []string{
			r.Department,
			r.Municipality,
			r.CropGroup,
			r.Crop,
			r.System,
			strconv.Itoa(r.Year),
			r.Period,
			utils.FormatDecimal(r.SownHa),
			utils.FormatDecimal(r.HarvestedHa),
			utils.FormatDecimal(r.ProductionT),
			utils.FormatDecimal(r.YieldTHa),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the extract into dir and returns the full path
// and the generated filename.
func WriteCSVFile(dir, prefix string, v model.View) (path, name string, err error) {
	name = Filename(prefix, time.Now())
	path = filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, v); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, name, nil
}
