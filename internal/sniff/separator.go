// Package sniff implements the input heuristics: field-separator
// detection, header detection, and recognizers for special clipboard text
// shapes.
//
// Design constraints:
//   - heuristics never abort a conversion; callers recover from
//     ErrNoDelimiter by treating the input as a single one-column table
//   - detection samples a bounded number of lines so large pastes stay
//     cheap
package sniff

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNoDelimiter reports that no candidate separator produced more than one
// field anywhere in the sample. Callers recover by treating the input as a
// single one-column table, surfacing a warning at most.
var ErrNoDelimiter = errors.New("no delimiter found")

// sampleLines caps how many non-empty lines Detect looks at.
const sampleLines = 10

// Separator identifies how a line splits into fields: on a single rune, or
// on any run of whitespace.
type Separator struct {
	Rune       rune
	Whitespace bool
}

// Named separators, in detection tie-break priority order.
var (
	Comma      = Separator{Rune: ','}
	Tab        = Separator{Rune: '\t'}
	Pipe       = Separator{Rune: '|'}
	Semicolon  = Separator{Rune: ';'}
	Whitespace = Separator{Whitespace: true}
)

// candidates holds the single-rune separators Detect scores, in tie-break
// priority order. Whitespace runs are the fallback, never a candidate.
var candidates = []Separator{Comma, Tab, Pipe, Semicolon}

// String returns the flag-friendly name of the separator.
func (s Separator) String() string {
	if s.Whitespace {
		return "whitespace"
	}
	switch s.Rune {
	case ',':
		return "comma"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	case ';':
		return "semicolon"
	default:
		return string(s.Rune)
	}
}

// Split cuts one line into fields.
func (s Separator) Split(line string) []string {
	if s.Whitespace {
		return strings.Fields(line)
	}
	return strings.Split(line, string(s.Rune))
}

// Join re-merges fields; it is the inverse of Split for overflow repair.
// Whitespace runs collapse to a single space.
func (s Separator) Join(fields []string) string {
	if s.Whitespace {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields, string(s.Rune))
}

// ParseSeparator maps a flag value to a Separator. It accepts the candidate
// names (comma, tab, pipe, semicolon, whitespace, space), the escape \t,
// and any single-rune literal.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(s) {
	case "comma", ",":
		return Comma, nil
	case "tab", "\t", `\t`:
		return Tab, nil
	case "pipe", "|":
		return Pipe, nil
	case "semicolon", ";":
		return Semicolon, nil
	case "whitespace", "space", " ":
		return Whitespace, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Separator{Rune: r}, nil
	}
	return Separator{}, fmt.Errorf("unsupported separator %q", s)
}

// Detect picks the most likely field separator for text.
//
// The first sampleLines non-empty lines are split under every candidate. A
// candidate is consistent when each sampled line yields the same field
// count of at least two; consistent candidates rank by total separator
// occurrences across the sample, ties keeping the fixed priority order
// comma > tab > pipe > semicolon. When no candidate is consistent, any
// candidate that splits at least one line still wins by occurrence count
// (ragged input repairs downstream). Whitespace runs are the last resort;
// if they cannot produce more than one field either, ErrNoDelimiter is
// returned alongside the whitespace fallback.
func Detect(text string) (Separator, error) {
	lines := nonEmptyLines(text, sampleLines)
	if len(lines) == 0 {
		return Whitespace, ErrNoDelimiter
	}

	type score struct {
		sep         Separator
		consistent  bool
		occurrences int
	}

	var scores []score
	for _, cand := range candidates {
		sc := score{sep: cand, consistent: true}
		maxFields := 0
		first := 0
		for i, ln := range lines {
			n := len(cand.Split(ln))
			sc.occurrences += strings.Count(ln, string(cand.Rune))
			if n > maxFields {
				maxFields = n
			}
			if i == 0 {
				first = n
			} else if n != first {
				sc.consistent = false
			}
		}
		if first < 2 {
			sc.consistent = false
		}
		if maxFields >= 2 {
			scores = append(scores, sc)
		}
	}

	best := -1
	for i, sc := range scores {
		if !sc.consistent {
			continue
		}
		if best < 0 || sc.occurrences > scores[best].occurrences {
			best = i
		}
	}
	if best < 0 {
		for i, sc := range scores {
			if best < 0 || sc.occurrences > scores[best].occurrences {
				best = i
			}
		}
	}
	if best >= 0 {
		return scores[best].sep, nil
	}

	for _, ln := range lines {
		if len(strings.Fields(ln)) >= 2 {
			return Whitespace, nil
		}
	}
	return Whitespace, ErrNoDelimiter
}

// IsTabular reports whether text already looks like a table: at least two
// non-empty lines whose detected separator yields the same field count of
// more than one on every line. The clipboard flow uses this to decide
// between the plain-text and rich HTML targets.
func IsTabular(text string) bool {
	lines := nonEmptyLines(text, 0)
	if len(lines) < 2 {
		return false
	}
	sep, err := Detect(text)
	if err != nil {
		return false
	}
	want := len(sep.Split(lines[0]))
	if want < 2 {
		return false
	}
	for _, ln := range lines[1:] {
		if len(sep.Split(ln)) != want {
			return false
		}
	}
	return true
}

// nonEmptyLines returns up to max non-empty lines (all of them when max is
// zero or negative), tolerating both line-ending conventions.
func nonEmptyLines(text string, max int) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		out = append(out, ln)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
