package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"eva-analytics/internal/analysis"
	"eva-analytics/internal/dataset"
	"eva-analytics/internal/export"
	"eva-analytics/internal/filter"
	"eva-analytics/internal/model"
	"eva-analytics/internal/store"
	"eva-analytics/pkg/utils"
)

var (
	loader     *dataset.Loader
	source     string
	scope      dataset.CropScope
	outputs    *utils.OutputManager
	snapshotID string
)

// Init wires the handlers to a loader, the configured survey source
// and the export directory. snapshot is the id the loaded dataset was
// persisted under.
func Init(l *dataset.Loader, src string, sc dataset.CropScope, om *utils.OutputManager, snapshot string) {
	loader = l
	source = src
	scope = sc
	outputs = om
	snapshotID = snapshot
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors to HTTP responses. An empty filter
// result is a notice for the user, not a server fault.
func writeError(w http.ResponseWriter, err error) {
	var empty *model.EmptyResultError
	if errors.As(err, &empty) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"notice": empty.Error()})
		return
	}
	var format *model.DataFormatError
	var parse *model.ParseError
	if errors.As(err, &format) || errors.As(err, &parse) {
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
}

// parseSelection reads the filter panel state from query parameters.
// departments is comma-separated; year must be numeric.
func parseSelection(r *http.Request) (model.Selection, error) {
	var sel model.Selection
	q := r.URL.Query()
	if raw := q.Get("departments"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				sel.Departments = append(sel.Departments, d)
			}
		}
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return sel, fmt.Errorf("invalid year %q", raw)
		}
		sel.Year = &year
	}
	sel.Department = q.Get("department")
	sel.Municipality = q.Get("municipality")
	return sel, nil
}

// filteredView loads the dataset and applies the request's selection.
func filteredView(r *http.Request) (model.View, model.Selection, error) {
	sel, err := parseSelection(r)
	if err != nil {
		return model.View{}, sel, err
	}
	ds, err := loader.Load(r.Context(), source, scope)
	if err != nil {
		return model.View{}, sel, err
	}
	sel = filter.Normalize(ds.View(), sel)
	v, err := filter.Apply(ds.View(), sel)
	return v, sel, err
}

// Health reports service liveness
// @Summary Health check
// @Description Report whether the service and its dataset are available
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	ds, err := loader.Load(r.Context(), source, scope)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"records":   ds.Len(),
		"scope":     ds.Scope.String(),
		"fetchedAt": ds.FetchedAt,
	})
}

// GetOptions lists filter panel values
// @Summary Filter options
// @Description List departments, years and municipalities offered by the filter panel. Passing department narrows municipalities to that department.
// @Tags filters
// @Produce json
// @Param department query string false "Department to cascade municipalities from"
// @Success 200 {object} model.FilterOptions "Available filter values"
// @Failure 502 {object} map[string]interface{} "Source file unavailable or malformed"
// @Router /options [get]
func GetOptions(w http.ResponseWriter, r *http.Request) {
	ds, err := loader.Load(r.Context(), source, scope)
	if err != nil {
		writeError(w, err)
		return
	}
	opts := filter.Options(ds.View())
	if dept := r.URL.Query().Get("department"); dept != "" {
		opts.Municipalities = filter.Municipalities(ds.View(), dept)
	}
	writeJSON(w, http.StatusOK, opts)
}

// GetDashboard computes the dashboard for a selection
// @Summary Dashboard figures
// @Description Compute every dashboard table and series for the filtered slice of the survey
// @Tags dashboard
// @Produce json
// @Param departments query string false "Comma-separated department multi-select"
// @Param year query int false "Calendar year"
// @Param department query string false "Detail department"
// @Param municipality query string false "Detail municipality"
// @Success 200 {object} model.Dashboard "Dashboard figures"
// @Failure 422 {object} map[string]interface{} "No records match the selection"
// @Router /dashboard [get]
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	v, _, err := filteredView(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis.ComputeDashboard(v))
}

// GetRecords pages through the filtered raw records
// @Summary Filtered records
// @Description Return the raw survey records matching the selection, up to limit rows
// @Tags records
// @Produce json
// @Param limit query int false "Maximum rows to return (default 100)"
// @Success 200 {object} map[string]interface{} "Record page"
// @Failure 422 {object} map[string]interface{} "No records match the selection"
// @Router /records [get]
func GetRecords(w http.ResponseWriter, r *http.Request) {
	v, sel, err := filteredView(r)
	if err != nil {
		writeError(w, err)
		return
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	n := v.Len()
	if limit < n {
		n = limit
	}
	records := make([]map[string]interface{}, n)
	for i := 0; i < n; i++ {
		records[i] = recordJSON(v.At(i))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"selection": sel,
		"records":   records,
		"count":     n,
		"total":     v.Len(),
		"limit":     limit,
	})
}

// recordJSON renders a record with nulls for missing numerics, since
// NaN has no JSON representation.
func recordJSON(r model.Record) map[string]interface{} {
	num := func(v float64) interface{} {
		if model.Missing(v) {
			return nil
		}
		return v
	}
	return map[string]interface{}{
		"department":   r.Department,
		"municipality": r.Municipality,
		"crop_group":   r.CropGroup,
		"crop":         r.Crop,
		"system":       r.System,
		"year":         r.Year,
		"period":       r.Period,
		"sown_ha":      num(r.SownHa),
		"harvested_ha": num(r.HarvestedHa),
		"production_t": num(r.ProductionT),
		"yield_t_ha":   num(r.YieldTHa),
	}
}

// CreateExport generates the download bundle for a selection
// @Summary Create export
// @Description Write the filtered records as a date-stamped CSV plus an Excel workbook of the dashboard tables, and register them for download
// @Tags exports
// @Accept json
// @Produce json
// @Param selection body model.Selection true "Filter selection to export"
// @Success 200 {object} map[string]interface{} "Export created"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 422 {object} map[string]interface{} "No records match the selection"
// @Failure 500 {object} map[string]interface{} "Export generation failed"
// @Router /exports [post]
func CreateExport(w http.ResponseWriter, r *http.Request) {
	var sel model.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ds, err := loader.Load(r.Context(), source, scope)
	if err != nil {
		writeError(w, err)
		return
	}
	sel = filter.Normalize(ds.View(), sel)
	v, err := filter.Apply(ds.View(), sel)
	if err != nil {
		writeError(w, err)
		return
	}

	exportID := uuid.New().String()
	dir, err := outputs.ExportDir(exportID)
	if err != nil {
		writeError(w, err)
		return
	}

	prefix := strings.ToLower(scope.Group)
	if scope.Crop != "" {
		prefix = strings.ToLower(scope.Crop)
	}
	csvPath, csvName, err := export.WriteCSVFile(dir, prefix, v)
	if err != nil {
		writeError(w, err)
		return
	}

	dash := analysis.ComputeDashboard(v)
	xlsxName := "dashboard.xlsx"
	if err := export.WriteWorkbook(filepath.Join(dir, xlsxName), dash); err != nil {
		writeError(w, err)
		return
	}

	if err := store.SaveExport(exportID, snapshotID, sel, csvName, csvPath, "csv", v.Len()); err != nil {
		writeError(w, err)
		return
	}
	fmt.Printf("💾 Export %s written (%d rows)\n", exportID, v.Len())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Export created successfully!",
		"exportId": exportID,
		"rowCount": v.Len(),
		"files": []map[string]interface{}{
			{"filename": csvName, "url": outputs.DownloadURL(exportID, csvName)},
			{"filename": xlsxName, "url": outputs.DownloadURL(exportID, xlsxName)},
		},
	})
}

// ListExports lists generated exports
// @Summary List exports
// @Description List every generated export, newest first
// @Tags exports
// @Produce json
// @Success 200 {array} map[string]interface{} "Exports"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exports [get]
func ListExports(w http.ResponseWriter, r *http.Request) {
	exports, err := store.ListExports()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exports)
}

// GetExportInfo fetches one export record
// @Summary Get export
// @Description Retrieve the metadata of one export by id
// @Tags exports
// @Produce json
// @Param id path string true "Export ID"
// @Success 200 {object} map[string]interface{} "Export details"
// @Failure 404 {object} map[string]interface{} "Export not found"
// @Router /exports/{id} [get]
func GetExportInfo(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 4 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	exportID := parts[3]

	info, err := store.GetExport(exportID)
	if err != nil {
		http.Error(w, "Export not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ListSnapshots lists persisted dataset snapshots
// @Summary List snapshots
// @Description List every dataset snapshot persisted by the service
// @Tags snapshots
// @Produce json
// @Success 200 {array} map[string]interface{} "Snapshots"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /snapshots [get]
func ListSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := store.ListSnapshots()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// DownloadFile serves an export file
// @Summary Download file
// @Description Download one file of a generated export
// @Tags exports
// @Produce application/octet-stream
// @Param exportID path string true "Export ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{exportID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/{exportID}/{filename}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	exportID := parts[3]
	fileName := filepath.Base(parts[4])

	filePath := filepath.Join(outputs.BaseOutputDir, exportID, fileName)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, filePath)
}
