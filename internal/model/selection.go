package model

import (
	"strconv"
	"strings"
)

// Selection captures the state of the dashboard filter panel. Zero
// values mean "no restriction" for their dimension; the dimensions
// that are set are combined conjunctively.
type Selection struct {
	Departments  []string `json:"departments,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Department   string   `json:"department,omitempty"`
	Municipality string   `json:"municipality,omitempty"`
}

// IsZero reports whether no dimension is restricted.
func (s Selection) IsZero() bool {
	return len(s.Departments) == 0 && s.Year == nil && s.Department == "" && s.Municipality == ""
}

// Describe renders the active constraints for log lines and error
// messages, e.g. "departments=[META TOLIMA] year=2020".
func (s Selection) Describe() string {
	var parts []string
	if len(s.Departments) > 0 {
		parts = append(parts, "departments=["+strings.Join(s.Departments, " ")+"]")
	}
	if s.Year != nil {
		parts = append(parts, "year="+strconv.Itoa(*s.Year))
	}
	if s.Department != "" {
		parts = append(parts, "department="+s.Department)
	}
	if s.Municipality != "" {
		parts = append(parts, "municipality="+s.Municipality)
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, " ")
}

// FilterOptions holds the values offered by the filter panel for the
// currently loaded dataset.
type FilterOptions struct {
	Departments    []string `json:"departments"`
	Years          []int    `json:"years"`
	Municipalities []string `json:"municipalities"`
}
