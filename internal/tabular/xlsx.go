package tabular

import (
	"math"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures the XLSX reader.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadXLSX loads one sheet of a workbook. The sheet's first row is the
// header. Any failure is a SourceLoadError.
func ReadXLSX(path string, opts XLSXOptions) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, NewSourceLoadError(path, eris.Wrap(err, "xlsx: open file"))
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, NewSourceLoadError(path, err)
	}

	t := &Table{}
	for i, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := rowToStrings(row)
		if i == 0 {
			t.Header = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	if t.Header == nil {
		return nil, NewSourceLoadError(path, eris.Errorf("xlsx: sheet %q has no header", sheet.Name))
	}
	return t, nil
}

// WriteXLSX writes the table to a single-sheet workbook. Cells in
// numericCols that hold a number are stored as numeric cells.
func WriteXLSX(path, sheetName string, t *Table, numericCols ...string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrapf(err, "xlsx: add sheet %q", sheetName)
	}

	numeric := make(map[int]bool, len(numericCols))
	for _, name := range numericCols {
		if i := t.Col(name); i >= 0 {
			numeric[i] = true
		}
	}

	header := sheet.AddRow()
	for _, h := range t.Header {
		header.AddCell().SetString(h)
	}
	for _, rowData := range t.Rows {
		row := sheet.AddRow()
		for j, v := range rowData {
			cell := row.AddCell()
			if numeric[j] {
				if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
					cell.SetFloat(n)
					continue
				}
			}
			cell.SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "xlsx: save file")
	}
	return nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

// rowToStrings keeps the stored value of numeric cells. String() applies
// the cell's number format, which would round a "0.00" km to two places.
func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell.Type() == xlsx.CellTypeNumeric && !cell.IsTime() {
			cells[j] = cell.Value
			continue
		}
		cells[j] = cell.String()
	}
	return cells
}
