package model

import (
	"fmt"
	"strings"
)

// DataFormatError reports a source file whose header row lacks one
// or more required survey columns. Loading stops before any row is
// parsed.
type DataFormatError struct {
	Source  string
	Missing []string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("source %q does not match the survey layout: missing columns [%s]",
		e.Source, strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that held a non-empty value which could
// not be converted to the column's expected type.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %s: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyResultError signals that a filter combination matched no rows.
// Callers present it as a notice and skip all downstream computation.
type EmptyResultError struct {
	Selection Selection
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no records match the selected filters (%s)", e.Selection.Describe())
}

// UndefinedRatioError reports a ratio whose denominator was zero for
// every row of the group, leaving the quotient undefined.
type UndefinedRatioError struct {
	Ratio string
	Group string
}

func (e *UndefinedRatioError) Error() string {
	return fmt.Sprintf("ratio %s is undefined for %s: denominator is zero", e.Ratio, e.Group)
}
