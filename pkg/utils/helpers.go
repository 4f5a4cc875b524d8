package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal converts a survey cell to float64. The source uses a
// comma as the decimal separator, so "1.234,5" style values are
// normalized before parsing. An empty cell yields NaN with a nil
// error; a non-empty cell that still fails to parse returns the
// underlying error.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// FormatDecimal renders a float so that parsing it back returns the
// exact same value. Missing values render as the empty string.
func FormatDecimal(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseYear converts a survey cell to a calendar year.
func ParseYear(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// CleanHeader normalizes a raw column title: embedded line breaks
// become spaces and runs of whitespace collapse to a single space.
func CleanHeader(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

// CleanCell trims the surrounding whitespace of a text cell.
func CleanCell(s string) string {
	return strings.TrimSpace(s)
}
