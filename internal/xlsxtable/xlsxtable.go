// Package xlsxtable reads the first worksheet of an Excel workbook into
// structured rows. A spreadsheet carries an explicit grid, so the
// delimiter and header heuristics are bypassed: the first non-empty row
// is taken as the header.
package xlsxtable

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tabpaste/internal/tabular"
)

// ErrNoData reports a workbook whose first sheet holds no non-empty rows.
var ErrNoData = errors.New("worksheet has no data")

// ReadFile opens the workbook at path and extracts its first sheet.
func ReadFile(path string) (tabular.Rows, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return tabular.Rows{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return firstSheet(f)
}

// Read extracts the first sheet of a workbook supplied as a stream.
func Read(r io.Reader) (tabular.Rows, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return tabular.Rows{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return firstSheet(f)
}

func firstSheet(f *excelize.File) (tabular.Rows, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return tabular.Rows{}, ErrNoData
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return tabular.Rows{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	// GetRows trims trailing empty cells per row; fully empty rows carry
	// no information and are dropped.
	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		if !emptyRow(r) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return tabular.Rows{}, ErrNoData
	}

	return tabular.Rows{
		Header:    rows[0],
		Records:   rows[1:],
		HasHeader: true,
	}, nil
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
