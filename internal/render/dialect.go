// Package render turns a typed table into source-code text for one of the
// supported dialects: pandas and polars DataFrame constructors, a flat
// list literal, or one list literal per column. Output is deterministic;
// the same table and options always produce byte-identical text.
package render

import (
	"errors"
	"fmt"
	"strings"

	"tabpaste/internal/tabular"
)

// ErrUnsupportedDialect reports a format selection outside the supported
// set.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Dialect selects the output code style.
type Dialect int

const (
	DialectPandas Dialect = iota
	DialectPolars
	DialectFlatList
	DialectVerticalList
)

// String returns the command-line spelling of the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectPandas:
		return "pandas"
	case DialectPolars:
		return "polars"
	case DialectFlatList:
		return "vector"
	case DialectVerticalList:
		return "vector-vertical"
	default:
		return "unknown"
	}
}

// ParseDialect maps a command-line spelling to a Dialect. "list" and
// "vertical" are aliases for the vector forms.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pandas":
		return DialectPandas, nil
	case "polars":
		return DialectPolars, nil
	case "vector", "list":
		return DialectFlatList, nil
	case "vector-vertical", "vertical":
		return DialectVerticalList, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
}

// Dialects returns the primary spellings accepted by ParseDialect.
func Dialects() []string {
	return []string{"pandas", "polars", "vector", "vector-vertical"}
}

// Options tune rendering. The zero value gives a 4-space indent, row-major
// flat lists, and the default variable names.
type Options struct {
	// Indent is the number of spaces before each column line in frame
	// dialects. Zero or negative means 4.
	Indent int

	// Name overrides the assignment target: "df" for frame dialects,
	// "data" for list dialects.
	Name string

	// ColumnMajor emits the flat list column by column instead of row by
	// row.
	ColumnMajor bool
}

func (o Options) indentSpaces() string {
	n := o.Indent
	if n <= 0 {
		n = 4
	}
	return strings.Repeat(" ", n)
}

func (o Options) varName(def string) string {
	if strings.TrimSpace(o.Name) != "" {
		return o.Name
	}
	return def
}

// Render emits source text reconstructing table in the given dialect.
func Render(table tabular.Table, dialect Dialect, opts Options) (string, error) {
	switch dialect {
	case DialectPandas:
		return renderFrame(table, framePandas, opts), nil
	case DialectPolars:
		return renderFrame(table, framePolars, opts), nil
	case DialectFlatList:
		return renderFlatList(table, opts), nil
	case DialectVerticalList:
		return renderVerticalList(table, opts), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnsupportedDialect, int(dialect))
}
