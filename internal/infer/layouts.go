package infer

import "time"

// dateLayouts are tried in order for date-only cells. ISO forms win over
// the ambiguous slash forms, and US month-first is tried before day-first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// tsLayouts are tried before dateLayouts. RFC3339 comes first so zone
// offsets are captured when the cell carries one.
var tsLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006 15:04:05",
}

// parseTemporal matches s against the timestamp layouts, then the
// date-only layouts. dateOnly reports a date-layout match; hasOffset
// reports that the matched layout carries a zone offset.
func parseTemporal(s string) (t time.Time, dateOnly, hasOffset, ok bool) {
	for _, layout := range tsLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, false, layout == time.RFC3339, true
		}
	}
	for _, layout := range dateLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true, false, true
		}
	}
	return time.Time{}, false, false, false
}
