package sniff

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// HasHeader decides whether the first record of a rectangular table is a
// header row rather than data.
//
// Rules, in order:
//  1. any numeric cell in the first row means data (no header)
//  2. a fully non-numeric first row sitting above at least one numeric
//     cell in the same position is a header
//  3. all-string tables fall back to label-likeness: repeated first-row
//     values mean data, a first row much longer than the data rows means
//     data, anything else defaults to header (header-bearing paste is the
//     common case)
//
// Single-record tables are always data. Structured sources (HTML, xlsx,
// JSON) carry their own header signal and never call this.
func HasHeader(records [][]string) bool {
	if len(records) < 2 || len(records[0]) == 0 {
		return false
	}
	first := records[0]

	for _, cell := range first {
		if isNumeric(cell) {
			return false
		}
	}

	for _, rec := range records[1:] {
		for col := range first {
			if col < len(rec) && isNumeric(rec[col]) {
				return true
			}
		}
	}

	seen := make(map[string]struct{}, len(first))
	for _, cell := range first {
		key := strings.TrimSpace(cell)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	firstMean := meanCellLength(first)
	var rest []string
	for _, rec := range records[1:] {
		rest = append(rest, rec...)
	}
	restMean := meanCellLength(rest)
	if restMean > 0 && firstMean > restMean*1.5 {
		return false
	}
	return true
}

// isNumeric is the inference chain's numeric test without the datetime
// family: base-10 integers or finite decimal floats. Header detection and
// type inference must agree on what counts as numeric.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// meanCellLength averages trimmed cell lengths in runes.
func meanCellLength(cells []string) float64 {
	if len(cells) == 0 {
		return 0
	}
	lengths := make([]float64, 0, len(cells))
	for _, c := range cells {
		lengths = append(lengths, float64(len([]rune(strings.TrimSpace(c)))))
	}
	m, err := stats.Mean(lengths)
	if err != nil {
		return 0
	}
	return m
}
