// Package infer assigns a type to each column of a repaired table and
// coerces its raw cells into typed values. A column gets the most
// specific type that every non-missing cell satisfies; one straggler
// demotes the whole column to string rather than dropping the cell.
package infer

import (
	"math"
	"strconv"
	"strings"

	"tabpaste/internal/tabular"
)

// naTokens are treated as missing regardless of case, alongside the empty
// cell.
var naTokens = map[string]struct{}{
	"na":   {},
	"n/a":  {},
	"none": {},
	"null": {},
}

// IsMissing reports whether a raw cell denotes a missing value: empty
// after trimming, or one of the NA spellings.
func IsMissing(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, ok := naTokens[strings.ToLower(s)]
	return ok
}

// parseBool recognizes the loose boolean vocabulary. textual reports a
// word form rather than 0/1; a column made only of digits must not come
// out boolean.
func parseBool(s string) (val, textual, ok bool) {
	switch strings.ToLower(s) {
	case "1":
		return true, false, true
	case "0":
		return false, false, true
	case "true", "t", "yes", "y":
		return true, true, true
	case "false", "f", "no", "n":
		return false, true, true
	}
	return false, false, false
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

// parseFloat rejects the Inf and NaN spellings; those cells read better as
// text than as float literals in generated code.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Type infers the most specific column type every non-missing value
// satisfies. Precedence is boolean, integer, float, datetime, string.
// Missing cells do not vote, and an all-missing column is string.
func Type(values []string) tabular.ColumnType {
	allBool, allInt, allFloat, allTime := true, true, true, true
	sawTextualBool := false
	nonMissing := 0

	for _, raw := range values {
		s := strings.TrimSpace(raw)
		if IsMissing(s) {
			continue
		}
		nonMissing++
		if allBool {
			if _, textual, ok := parseBool(s); ok {
				sawTextualBool = sawTextualBool || textual
			} else {
				allBool = false
			}
		}
		if allInt {
			if _, ok := parseInt(s); !ok {
				allInt = false
			}
		}
		if allFloat {
			if _, ok := parseFloat(s); !ok {
				allFloat = false
			}
		}
		if allTime {
			if _, _, _, ok := parseTemporal(s); !ok {
				allTime = false
			}
		}
	}

	switch {
	case nonMissing == 0:
		return tabular.TypeString
	case allBool && sawTextualBool:
		return tabular.TypeBoolean
	case allInt:
		return tabular.TypeInteger
	case allFloat:
		return tabular.TypeFloat
	case allTime:
		return tabular.TypeDateTime
	default:
		return tabular.TypeString
	}
}
