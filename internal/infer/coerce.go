package infer

import (
	"strings"

	"tabpaste/internal/tabular"
)

// Coerce converts raw cells into typed values under t and returns the type
// the column ended up with. Type guarantees every non-missing cell parses,
// so the demotion path only fires when a caller passes a type it chose
// itself; the column then falls back to string wholesale.
func Coerce(values []string, t tabular.ColumnType) ([]tabular.Value, tabular.ColumnType) {
	out := make([]tabular.Value, len(values))
	for i, raw := range values {
		s := strings.TrimSpace(raw)
		if IsMissing(s) {
			out[i] = tabular.NewMissingValue(t)
			continue
		}
		v, ok := coerceOne(s, t)
		if !ok {
			return coerceStrings(values), tabular.TypeString
		}
		out[i] = v
	}
	return out, t
}

func coerceOne(s string, t tabular.ColumnType) (tabular.Value, bool) {
	switch t {
	case tabular.TypeBoolean:
		if v, _, ok := parseBool(s); ok {
			return tabular.NewBooleanValue(v), true
		}
	case tabular.TypeInteger:
		if v, ok := parseInt(s); ok {
			return tabular.NewIntegerValue(v), true
		}
	case tabular.TypeFloat:
		if v, ok := parseFloat(s); ok {
			return tabular.NewFloatValue(v), true
		}
	case tabular.TypeDateTime:
		if v, dateOnly, hasOffset, ok := parseTemporal(s); ok {
			return tabular.NewDateTimeValue(v, dateOnly, hasOffset), true
		}
	case tabular.TypeString:
		return tabular.NewStringValue(s), true
	}
	return tabular.Value{}, false
}

func coerceStrings(values []string) []tabular.Value {
	out := make([]tabular.Value, len(values))
	for i, raw := range values {
		s := strings.TrimSpace(raw)
		if IsMissing(s) {
			out[i] = tabular.NewMissingValue(tabular.TypeString)
			continue
		}
		out[i] = tabular.NewStringValue(s)
	}
	return out
}

// Column runs inference and coercion in one step.
func Column(values []string) ([]tabular.Value, tabular.ColumnType) {
	return Coerce(values, Type(values))
}
