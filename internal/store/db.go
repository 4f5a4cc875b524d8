package store

import (
	"database/sql"
	"encoding/json"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"eva-analytics/internal/model"
)

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	snapshotTable := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		source TEXT,
		crop_group TEXT,
		crop TEXT,
		row_count INTEGER,
		year_min INTEGER,
		year_max INTEGER,
		fetched_at DATETIME
	);
	`
	recordTable := `
	CREATE TABLE IF NOT EXISTS records (
		snapshot_id TEXT,
		department TEXT,
		municipality TEXT,
		crop_group TEXT,
		crop TEXT,
		system TEXT,
		year INTEGER,
		period TEXT,
		sown_ha REAL,
		harvested_ha REAL,
		production_t REAL,
		yield_t_ha REAL
	);
	`
	exportTable := `
	CREATE TABLE IF NOT EXISTS exports (
		id TEXT PRIMARY KEY,
		snapshot_id TEXT,
		selection TEXT,
		filename TEXT,
		path TEXT,
		format TEXT,
		row_count INTEGER,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{snapshotTable, recordTable, exportTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// nullable maps a missing value to SQL NULL.
func nullable(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// SaveSnapshot stores one loaded dataset together with its records.
// The record insert runs in a single transaction.
func SaveSnapshot(snapshotID, source, cropGroup, crop string, fetchedAt time.Time, records []model.Record) error {
	yearMin, yearMax := 0, 0
	for i, r := range records {
		if i == 0 || r.Year < yearMin {
			yearMin = r.Year
		}
		if i == 0 || r.Year > yearMax {
			yearMax = r.Year
		}
	}

	_, err := db.Exec(`INSERT INTO snapshots (id, source, crop_group, crop, row_count, year_min, year_max, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshotID, source, cropGroup, crop, len(records), yearMin, yearMax, fetchedAt.UTC())
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO records
		(snapshot_id, department, municipality, crop_group, crop, system, year, period, sown_ha, harvested_ha, production_t, yield_t_ha)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(snapshotID, r.Department, r.Municipality, r.CropGroup, r.Crop, r.System,
			r.Year, r.Period, nullable(r.SownHa), nullable(r.HarvestedHa), nullable(r.ProductionT), nullable(r.YieldTHa))
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ListSnapshots returns all stored snapshots, newest first.
func ListSnapshots() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, source, crop_group, crop, row_count, year_min, year_max, fetched_at
		FROM snapshots ORDER BY fetched_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []map[string]interface{}
	for rows.Next() {
		var id, source, cropGroup, crop string
		var rowCount, yearMin, yearMax int
		var fetchedAt time.Time
		if err := rows.Scan(&id, &source, &cropGroup, &crop, &rowCount, &yearMin, &yearMax, &fetchedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, map[string]interface{}{
			"id":        id,
			"source":    source,
			"cropGroup": cropGroup,
			"crop":      crop,
			"rowCount":  rowCount,
			"yearMin":   yearMin,
			"yearMax":   yearMax,
			"fetchedAt": fetchedAt,
		})
	}
	return snapshots, nil
}

// SaveExport records a generated export file.
func SaveExport(exportID, snapshotID string, sel model.Selection, filename, path, format string, rowCount int) error {
	selJSON, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO exports (id, snapshot_id, selection, filename, path, format, row_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		exportID, snapshotID, selJSON, filename, path, format, rowCount, time.Now().UTC())
	return err
}

// ListExports returns all recorded exports, newest first.
func ListExports() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, snapshot_id, selection, filename, format, row_count, created_at
		FROM exports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []map[string]interface{}
	for rows.Next() {
		var id, snapshotID, selJSON, filename, format string
		var rowCount int
		var createdAt time.Time
		if err := rows.Scan(&id, &snapshotID, &selJSON, &filename, &format, &rowCount, &createdAt); err != nil {
			return nil, err
		}
		var sel model.Selection
		if err := json.Unmarshal([]byte(selJSON), &sel); err != nil {
			return nil, err
		}
		exports = append(exports, map[string]interface{}{
			"id":         id,
			"snapshotId": snapshotID,
			"selection":  sel,
			"filename":   filename,
			"format":     format,
			"rowCount":   rowCount,
			"createdAt":  createdAt,
		})
	}
	return exports, nil
}

// GetExport fetches one export record by id.
func GetExport(exportID string) (map[string]interface{}, error) {
	var snapshotID, selJSON, filename, path, format string
	var rowCount int
	var createdAt time.Time

	err := db.QueryRow(`SELECT snapshot_id, selection, filename, path, format, row_count, created_at
		FROM exports WHERE id = ?`, exportID).
		Scan(&snapshotID, &selJSON, &filename, &path, &format, &rowCount, &createdAt)
	if err != nil {
		return nil, err
	}

	var sel model.Selection
	if err := json.Unmarshal([]byte(selJSON), &sel); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":         exportID,
		"snapshotId": snapshotID,
		"selection":  sel,
		"filename":   filename,
		"path":       path,
		"format":     format,
		"rowCount":   rowCount,
		"createdAt":  createdAt,
	}, nil
}
