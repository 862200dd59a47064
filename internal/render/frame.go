package render

import (
	"strings"

	"tabpaste/internal/tabular"
)

type frameDialect struct {
	importLine string
	ctor       string
}

var (
	framePandas = frameDialect{importLine: "import pandas as pd", ctor: "pd.DataFrame"}
	framePolars = frameDialect{importLine: "import polars as pl", ctor: "pl.DataFrame"}
)

// renderFrame emits a DataFrame constructor call: the import line, a blank
// line, then one column per line inside a mapping. Quoted column names are
// right-padded so the colons align. A table with no columns collapses to
// an empty constructor.
func renderFrame(table tabular.Table, fd frameDialect, opts Options) string {
	name := opts.varName("df")
	if len(table.Columns) == 0 {
		return fd.importLine + "\n" + name + " = " + fd.ctor + "()"
	}

	quoted := make([]string, len(table.Columns))
	pad := 0
	needDatetime := false
	for i, c := range table.Columns {
		quoted[i] = quoteString(c.Name)
		if len(quoted[i]) > pad {
			pad = len(quoted[i])
		}
		if c.Type == tabular.TypeDateTime && !columnHasOffset(c) {
			needDatetime = true
		}
	}

	indent := opts.indentSpaces()
	lines := make([]string, 0, len(table.Columns)+5)
	if needDatetime {
		lines = append(lines, "import datetime")
	}
	lines = append(lines, fd.importLine, "", name+" = "+fd.ctor+"({")

	for i, c := range table.Columns {
		quotedTime := columnHasOffset(c)
		vals := make([]string, len(c.Values))
		for j, v := range c.Values {
			vals[j] = literal(v, quotedTime)
		}
		padded := quoted[i] + strings.Repeat(" ", pad-len(quoted[i]))
		lines = append(lines, indent+padded+": ["+strings.Join(vals, ", ")+"],")
	}

	lines = append(lines, "})")
	return strings.Join(lines, "\n")
}

// columnHasOffset reports whether any cell in the column carries a zone
// offset. Naive datetime constructors cannot express offsets, so such
// columns fall back to quoted ISO strings wholesale.
func columnHasOffset(c tabular.Column) bool {
	for _, v := range c.Values {
		if !v.Missing && v.HasOffset {
			return true
		}
	}
	return false
}
