// Package htmltable reads the first <table> element of an HTML document
// into structured rows, bypassing the delimiter and header heuristics.
package htmltable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tabpaste/internal/tabular"
)

// ErrNoTable reports a document without a usable <table> element.
var ErrNoTable = errors.New("no table found in html")

// Extract parses html and returns the first table's rows. Header presence
// comes from the structural signal: a row inside <thead>, or a leading row
// made entirely of <th> cells. Subsequent tables are ignored, and rows of
// tables nested inside the first one are skipped.
func Extract(html string) (tabular.Rows, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return tabular.Rows{}, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return tabular.Rows{}, ErrNoTable
	}

	var header []string
	var records [][]string

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if closest := tr.Closest("table"); closest.Length() > 0 && closest.Get(0) != table.Get(0) {
			return
		}
		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() == 0 {
			return
		}

		row := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})

		inHead := tr.ParentsFiltered("thead").Length() > 0
		allTH := tr.ChildrenFiltered("th").Length() == cells.Length()
		if header == nil && len(records) == 0 && (inHead || allTH) {
			header = row
			return
		}
		records = append(records, row)
	})

	if header == nil && len(records) == 0 {
		return tabular.Rows{}, ErrNoTable
	}
	return tabular.Rows{Header: header, Records: records, HasHeader: header != nil}, nil
}
