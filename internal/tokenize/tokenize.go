// Package tokenize splits raw text into rows and fields and repairs ragged
// rows into a rectangle. Field splitting does not honor quoting: a
// separator inside quotes still splits (documented limitation of the
// paste-oriented grammar).
package tokenize

import (
	"strings"

	"tabpaste/internal/sniff"
)

// SplitLines cuts text into lines, tolerating CRLF and LF endings. Empty
// lines carry no cells and are dropped, trailing or interior. A leading
// byte-order mark is stripped.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, "\uFEFF")
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		out = append(out, ln)
	}
	return out
}

// Split tokenizes text into a raw table: lines, then fields per line under
// sep. Fields are whitespace-trimmed. Rows may come out ragged; callers
// repair them with Restructure.
func Split(text string, sep sniff.Separator) [][]string {
	lines := SplitLines(text)
	rows := make([][]string, 0, len(lines))
	for _, ln := range lines {
		fields := sep.Split(ln)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, fields)
	}
	return rows
}

// ModalWidth returns the most common field count across rows; ties resolve
// to the count that appears earliest in the input, which keeps a leading
// header row authoritative.
func ModalWidth(rows [][]string) int {
	counts := make(map[int]int, 4)
	var order []int
	for _, r := range rows {
		n := len(r)
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}
	best, bestN := 0, 0
	for _, n := range order {
		if counts[n] > bestN {
			best, bestN = n, counts[n]
		}
	}
	return best
}

// Restructure repairs a ragged raw table into a rectangle. width <= 0
// means the modal width of the rows. Short rows pad with empty cells
// (missing markers downstream); long rows merge their overflow into the
// last column, re-joined with sep, so no cell content is ever dropped.
func Restructure(rows [][]string, sep sniff.Separator, width int) [][]string {
	if len(rows) == 0 {
		return nil
	}
	if width <= 0 {
		width = ModalWidth(rows)
	}
	if width <= 0 {
		return nil
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		switch {
		case len(r) == width:
			out = append(out, r)
		case len(r) < width:
			grown := make([]string, width)
			copy(grown, r)
			out = append(out, grown)
		default:
			merged := make([]string, width)
			copy(merged, r[:width-1])
			merged[width-1] = sep.Join(r[width-1:])
			out = append(out, merged)
		}
	}
	return out
}
