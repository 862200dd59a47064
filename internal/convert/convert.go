// Package convert wires the pipeline together: separator detection,
// tokenization, header handling, per-column type inference, and code
// rendering. Parsing ambiguities are resolved by heuristic and never stop
// the pipeline; only missing input and an unknown dialect surface as
// errors.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"tabpaste/internal/infer"
	"tabpaste/internal/render"
	"tabpaste/internal/sniff"
	"tabpaste/internal/tabular"
	"tabpaste/internal/tokenize"
)

// ErrEmptyInput reports that no usable text or rows were supplied.
var ErrEmptyInput = errors.New("no input to convert")

// Request carries one conversion's settings.
type Request struct {
	Dialect   render.Dialect
	Separator *sniff.Separator // nil means auto-detect
	Header    *bool            // nil means heuristic (text) or structural (rows)
	MaxRows   int              // cap on data rows; 0 means unlimited
	Render    render.Options
}

// Result is the rendered code plus the table it was built from.
type Result struct {
	Code     string
	Table    tabular.Table
	Warnings []string
}

// FromText converts raw tabular text into source code.
func FromText(text string, req Request) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyInput
	}

	sep := sniff.Comma
	noDelimiter := false
	if req.Separator != nil {
		sep = *req.Separator
	} else {
		var err error
		sep, err = sniff.Detect(text)
		if errors.Is(err, sniff.ErrNoDelimiter) {
			// Whitespace fallback; worth surfacing only when the result is
			// trivially a single cell.
			noDelimiter = true
		}
	}

	raw := tokenize.Split(text, sep)
	if len(raw) == 0 {
		return Result{}, ErrEmptyInput
	}
	records := tokenize.Restructure(raw, sep, 0)

	hasHeader := sniff.HasHeader(records)
	if req.Header != nil {
		hasHeader = *req.Header
	}

	var headerCells []string
	data := records
	if hasHeader && len(records) > 1 {
		headerCells = records[0]
		data = records[1:]
	}

	res, err := build(headerCells, data, req)
	if err != nil {
		return Result{}, err
	}
	if noDelimiter && len(res.Table.Columns) == 1 && res.Table.RowCount <= 1 {
		res.Warnings = append([]string{"no delimiter found; input parsed as a single cell"}, res.Warnings...)
	}
	return res, nil
}

// FromRows converts pre-structured rows from an adapter, bypassing the
// delimiter and header heuristics. Header presence follows the adapter's
// structural signal unless the request overrides it.
func FromRows(rows tabular.Rows, req Request) (Result, error) {
	if rows.Empty() {
		return Result{}, ErrEmptyInput
	}

	hasHeader := rows.HasHeader
	if req.Header != nil {
		hasHeader = *req.Header
	}

	headerCells := rows.Header
	records := rows.Records
	switch {
	case hasHeader && len(headerCells) == 0 && len(records) > 1:
		// The adapter had no header row of its own; promote the first
		// record.
		headerCells = records[0]
		records = records[1:]
	case !hasHeader && len(headerCells) > 0:
		// Demote the adapter's header row back into the data.
		records = append([][]string{headerCells}, records...)
		headerCells = nil
	}

	// Structured sources have no separator; overflow cells merge with a
	// single space.
	records = tokenize.Restructure(records, sniff.Whitespace, len(headerCells))

	return build(headerCells, records, req)
}

// build assembles the typed table from rectangular data and renders it.
func build(headerCells []string, data [][]string, req Request) (Result, error) {
	var warnings []string
	if req.MaxRows > 0 && len(data) > req.MaxRows {
		warnings = append(warnings, fmt.Sprintf("input truncated to %d data rows", req.MaxRows))
		data = data[:req.MaxRows]
	}

	width := len(headerCells)
	if width == 0 && len(data) > 0 {
		width = len(data[0])
	}
	if width == 0 {
		return Result{}, ErrEmptyInput
	}

	headers := tabular.EnsureHeaders(headerCells, width)
	rawCols := tabular.Columnize(data, width)

	columns := make([]tabular.Column, width)
	for i, rawCol := range rawCols {
		vals, typ := infer.Column(rawCol)
		columns[i] = tabular.Column{Name: headers[i], Type: typ, Values: vals}
	}

	table := tabular.Table{Columns: columns, RowCount: len(data)}
	code, err := render.Render(table, req.Dialect, req.Render)
	if err != nil {
		return Result{}, err
	}
	return Result{Code: code, Table: table, Warnings: warnings}, nil
}
