package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"tabpaste/internal/tabular"
)

// literal renders one typed value as a Python literal. quotedTime selects
// quoted ISO strings for datetime cells instead of datetime constructor
// calls; list dialects always quote, frame dialects quote only when the
// column carries zone offsets.
func literal(v tabular.Value, quotedTime bool) string {
	if v.Missing {
		return "None"
	}
	switch v.Type {
	case tabular.TypeBoolean:
		if v.Bool {
			return "True"
		}
		return "False"
	case tabular.TypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case tabular.TypeFloat:
		return formatFloat(v.Float)
	case tabular.TypeDateTime:
		if quotedTime {
			return quoteString(isoString(v))
		}
		return datetimeCtor(v)
	default:
		return quoteString(v.Str)
	}
}

// formatFloat renders f with the shortest round-trip digits and a
// guaranteed decimal point or exponent marker, so integral floats come out
// as "2.0" rather than "2" and stay float-typed when evaluated.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteString renders s as a double-quoted Python string literal with
// backslashes, double quotes, and control characters escaped.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// isoString renders a datetime cell as its ISO text: bare date for
// date-only cells, RFC 3339 when the cell carried a zone offset, naive
// ISO otherwise.
func isoString(v tabular.Value) string {
	switch {
	case v.DateOnly:
		return v.Time.Format("2006-01-02")
	case v.HasOffset:
		return v.Time.Format(time.RFC3339)
	default:
		return v.Time.Format("2006-01-02T15:04:05")
	}
}

// datetimeCtor renders a datetime.date or datetime.datetime constructor
// call. The microsecond argument appears only when non-zero.
func datetimeCtor(v tabular.Value) string {
	t := v.Time
	if v.DateOnly {
		return fmt.Sprintf("datetime.date(%d, %d, %d)", t.Year(), int(t.Month()), t.Day())
	}
	if t.Nanosecond() != 0 {
		return fmt.Sprintf("datetime.datetime(%d, %d, %d, %d, %d, %d, %d)",
			t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000)
	}
	return fmt.Sprintf("datetime.datetime(%d, %d, %d, %d, %d, %d)",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Identifier sanitizes a header into a Python variable name: word
// characters survive, every other character becomes an underscore,
// underscore runs collapse, trailing underscores drop, and a name starting
// with a digit gains a col_ prefix. An empty result becomes unnamed_col.
func Identifier(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	s := b.String()
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.TrimRight(s, "_")
	if s == "" {
		return "unnamed_col"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "col_" + s
	}
	return s
}
