package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"eva-analytics/internal/model"
	"eva-analytics/pkg/utils"
)

// CropScope narrows the survey to one crop group and, optionally, a
// single crop inside it. Matching is case-insensitive on trimmed
// values.
type CropScope struct {
	Group string
	Crop  string
}

// ScopeCereals keeps every cereal record.
var ScopeCereals = CropScope{Group: "CEREALES"}

// ScopeRice keeps only rice records inside the cereal group.
var ScopeRice = CropScope{Group: "CEREALES", Crop: "ARROZ"}

func (s CropScope) matches(group, crop string) bool {
	if !strings.EqualFold(group, s.Group) {
		return false
	}
	return s.Crop == "" || strings.EqualFold(crop, s.Crop)
}

// String renders the scope for cache keys and log lines.
func (s CropScope) String() string {
	if s.Crop == "" {
		return s.Group
	}
	return s.Group + "/" + s.Crop
}

// Dataset is one loaded and normalized slice of the survey.
type Dataset struct {
	Source    string
	Scope     CropScope
	FetchedAt time.Time
	RowsRead  int
	records   []model.Record
}

// View returns a zero-copy view over every record of the dataset.
func (d *Dataset) View() model.View { return model.NewView(d.records) }

// Len returns the number of in-scope records.
func (d *Dataset) Len() int { return len(d.records) }

// Loader fetches, parses and caches survey files. A source/scope
// pair is read at most once; later calls return the cached dataset.
type Loader struct {
	Client *http.Client

	mu    sync.Mutex
	cache map[string]*Dataset
}

// NewLoader creates a loader with a generous timeout for the large
// government CSV downloads.
func NewLoader() *Loader {
	return &Loader{
		Client: &http.Client{Timeout: 5 * time.Minute},
		cache:  make(map[string]*Dataset),
	}
}

// Load returns the dataset for source and scope, reading and parsing
// the file only on the first call.
func (l *Loader) Load(ctx context.Context, source string, scope CropScope) (*Dataset, error) {
	key := source + "|" + scope.String()

	l.mu.Lock()
	if d, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return d, nil
	}
	l.mu.Unlock()

	fmt.Printf("📥 Loading survey data from %s (scope %s)...\n", source, scope)
	d, err := l.read(ctx, source, scope)
	if err != nil {
		return nil, err
	}
	fmt.Printf("✅ Loaded %d records (%d rows read)\n", d.Len(), d.RowsRead)

	l.mu.Lock()
	l.cache[key] = d
	l.mu.Unlock()
	return d, nil
}

// Invalidate drops every cached dataset for the given source.
func (l *Loader) Invalidate(source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key := range l.cache {
		if strings.HasPrefix(key, source+"|") {
			delete(l.cache, key)
		}
	}
}

func (l *Loader) read(ctx context.Context, source string, scope CropScope) (*Dataset, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, rows, err := parse(source, rc, scope)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Source:    source,
		Scope:     scope,
		FetchedAt: time.Now(),
		RowsRead:  rows,
		records:   records,
	}, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request for %s: %w", source, err)
		}
		resp, err := l.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to fetch %s: status %s", source, resp.Status)
		}
		return resp.Body, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", source, err)
	}
	return f, nil
}

// parse reads the semicolon-delimited survey file, keeps only rows in
// scope and normalizes them to the canonical record layout.
func parse(source string, r io.Reader, scope CropScope) ([]model.Record, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header of %s: %w", source, err)
	}
	sch, err := resolveSchema(source, header)
	if err != nil {
		return nil, 0, err
	}

	var records []model.Record
	rows := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rows, fmt.Errorf("failed to read %s: %w", source, err)
		}
		rows++

		cell := func(id string) string {
			i := sch[id]
			if i >= len(row) {
				return ""
			}
			return utils.CleanCell(row[i])
		}

		group := cell("crop_group")
		crop := cell("crop")
		if !scope.matches(group, crop) {
			continue
		}

		rec := model.Record{
			Department:   cell("department"),
			Municipality: cell("municipality"),
			CropGroup:    group,
			Crop:         crop,
			System:       cell("system"),
			Period:       cell("period"),
		}
		rec.Year, err = utils.ParseYear(cell("year"))
		if err != nil {
			return nil, rows, &model.ParseError{Row: rows, Column: "year", Value: cell("year"), Err: err}
		}
		for _, f := range []struct {
			id  string
			dst *float64
		}{
			{"sown_ha", &rec.SownHa},
			{"harvested_ha", &rec.HarvestedHa},
			{"production_t", &rec.ProductionT},
			{"yield_t_ha", &rec.YieldTHa},
		} {
			v, err := utils.ParseDecimal(cell(f.id))
			if err != nil {
				return nil, rows, &model.ParseError{Row: rows, Column: f.id, Value: cell(f.id), Err: err}
			}
			*f.dst = v
		}
		records = append(records, rec)
	}
	return records, rows, nil
}
