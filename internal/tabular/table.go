// Package tabular defines the table shapes shared by the conversion
// pipeline and its input adapters: raw row batches on the way in, typed
// column-major tables on the way out.
//
// Design constraints:
//   - column order is positional and deterministic (slices, never maps)
//   - every column holds exactly RowCount values
//   - header names are unique; absent ones synthesize as Column1..N
package tabular

import (
	"fmt"
	"strings"
)

// Rows is a rectangular batch of raw string cells handed to the pipeline.
//
// Structured sources (HTML tables, spreadsheets, JSON) fill Header and set
// HasHeader from their structural signal; the plain-text path fills both
// after header detection. Records may still be ragged at this point.
type Rows struct {
	Header    []string
	Records   [][]string
	HasHeader bool
}

// Empty reports whether the batch carries no cells at all.
func (r Rows) Empty() bool {
	return len(r.Records) == 0 && len(r.Header) == 0
}

// Table is the typed, column-major result of one conversion.
type Table struct {
	Columns  []Column
	RowCount int
}

// Column pairs a unique column name with its inferred type and coerced cells.
type Column struct {
	Name   string
	Type   ColumnType
	Values []Value
}

// Headers returns the column names in order.
func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Width returns the number of columns.
func (t Table) Width() int { return len(t.Columns) }

// EnsureHeaders returns exactly width unique column names. Blank or absent
// positions synthesize as Column1..N; duplicates get a numeric suffix so
// later columns never shadow earlier ones.
func EnsureHeaders(names []string, width int) []string {
	out := make([]string, width)
	seen := make(map[string]struct{}, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(names) {
			name = strings.TrimSpace(names[i])
		}
		if name == "" {
			name = fmt.Sprintf("Column%d", i+1)
		}
		base := name
		for n := 2; ; n++ {
			if _, dup := seen[name]; !dup {
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}
		seen[name] = struct{}{}
		out[i] = name
	}
	return out
}

// Columnize transposes records into width column-major slices. Cells past
// the end of a short record come out empty; ragged repair happens upstream,
// this is a plain transpose.
func Columnize(records [][]string, width int) [][]string {
	cols := make([][]string, width)
	for i := range cols {
		cols[i] = make([]string, len(records))
	}
	for r, rec := range records {
		for c := 0; c < width && c < len(rec); c++ {
			cols[c][r] = rec[c]
		}
	}
	return cols
}
