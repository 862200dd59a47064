package render

import (
	"fmt"
	"strings"

	"tabpaste/internal/tabular"
)

// renderFlatList emits every value in one list literal, row-major unless
// ColumnMajor is set. Headers are not included as values.
func renderFlatList(table tabular.Table, opts Options) string {
	name := opts.varName("data")
	var vals []string
	if opts.ColumnMajor {
		for _, c := range table.Columns {
			for _, v := range c.Values {
				vals = append(vals, literal(v, true))
			}
		}
	} else {
		for i := 0; i < table.RowCount; i++ {
			for _, c := range table.Columns {
				vals = append(vals, literal(c.Values[i], true))
			}
		}
	}
	return name + " = [" + strings.Join(vals, ", ") + "]"
}

// renderVerticalList emits one list literal per column, each assigned to a
// variable named after the sanitized header, equals signs aligned.
// Sanitized names that collide gain a numeric suffix so every column keeps
// its own assignment.
func renderVerticalList(table tabular.Table, opts Options) string {
	if len(table.Columns) == 0 {
		return opts.varName("data") + " = []"
	}

	names := make([]string, len(table.Columns))
	taken := make(map[string]bool, len(table.Columns))
	pad := 0
	for i, c := range table.Columns {
		id := Identifier(c.Name)
		if taken[id] {
			n := 2
			for taken[fmt.Sprintf("%s_%d", id, n)] {
				n++
			}
			id = fmt.Sprintf("%s_%d", id, n)
		}
		taken[id] = true
		names[i] = id
		if len(id) > pad {
			pad = len(id)
		}
	}

	lines := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		vals := make([]string, len(c.Values))
		for j, v := range c.Values {
			vals[j] = literal(v, true)
		}
		lines[i] = fmt.Sprintf("%-*s = [%s]", pad, names[i], strings.Join(vals, ", "))
	}
	return strings.Join(lines, "\n")
}
