package xlsxtable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, cells map[string]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, val := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, val))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

// TestRead checks first-sheet extraction with the first row as header.
func TestRead(t *testing.T) {
	t.Parallel()

	buf := workbookBytes(t, map[string]any{
		"A1": "Name", "B1": "Age",
		"A2": "John", "B2": 32,
		"A3": "Jane", "B3": 28,
	})

	rows, err := Read(buf)
	require.NoError(t, err)
	require.True(t, rows.HasHeader)
	require.Equal(t, []string{"Name", "Age"}, rows.Header)
	require.Equal(t, [][]string{{"John", "32"}, {"Jane", "28"}}, rows.Records)
}

// TestReadSkipsEmptyRows checks fully empty rows between data are dropped.
func TestReadSkipsEmptyRows(t *testing.T) {
	t.Parallel()

	buf := workbookBytes(t, map[string]any{
		"A1": "k", "B1": "v",
		"A3": "x", "B3": "y",
	})

	rows, err := Read(buf)
	require.NoError(t, err)
	require.Equal(t, []string{"k", "v"}, rows.Header)
	require.Equal(t, [][]string{{"x", "y"}}, rows.Records)
}

// TestReadEmptyWorkbook checks the no-data sentinel.
func TestReadEmptyWorkbook(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = Read(buf)
	require.ErrorIs(t, err, ErrNoData)
}

// TestReadRejectsGarbage checks a non-workbook stream errors cleanly.
func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Read(bytes.NewBufferString("not a zip archive"))
	require.Error(t, err)
}
