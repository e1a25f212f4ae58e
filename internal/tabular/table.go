// Package tabular reads and writes the CSV and XLSX tables that carry road
// and bridge survey data, and coerces their numeric cells.
package tabular

import (
	"math"
	"strconv"
	"strings"
)

// Table is a header row plus data rows. Rows may be shorter than the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Col returns the index of the named column, or -1. Names are matched after
// trimming surrounding whitespace.
func (t *Table) Col(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// HasCol reports whether the named column exists.
func (t *Table) HasCol(name string) bool {
	return t.Col(name) >= 0
}

// Cell returns row[idx], or "" when idx is negative or past the row's end.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Record maps a row's cells by column name. Cells missing from a short row
// are left out.
func (t *Table) Record(row []string) map[string]string {
	rec := make(map[string]string, len(t.Header))
	for i, h := range t.Header {
		if i < len(row) {
			rec[strings.TrimSpace(h)] = row[i]
		}
	}
	return rec
}

// Dedupe returns a copy of the table without exact full-row duplicates,
// keeping first occurrences, and the number of rows removed. Cells of
// columns where every non-empty value is a number compare by value, so
// "1.5" and "1.50" are the same cell there.
func (t *Table) Dedupe() (*Table, int) {
	numeric := t.numericColumns()
	seen := make(map[string]bool, len(t.Rows))
	out := &Table{Header: t.Header, Rows: make([][]string, 0, len(t.Rows))}
	for _, row := range t.Rows {
		cells := t.pad(row)
		if len(numeric) > 0 {
			cells = append([]string(nil), cells...)
			for j := range cells {
				if numeric[j] {
					cells[j] = FormatNumber(ParseNumber(cells[j]))
				}
			}
		}
		key := strings.Join(cells, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Rows = append(out.Rows, row)
	}
	return out, len(t.Rows) - len(out.Rows)
}

// numericColumns reports the columns whose non-empty cells all parse as
// numbers. A column with no values is left out.
func (t *Table) numericColumns() map[int]bool {
	numeric := make(map[int]bool)
	for j := range t.Header {
		present := false
		ok := true
		for _, row := range t.Rows {
			v := strings.TrimSpace(Cell(row, j))
			if v == "" {
				continue
			}
			present = true
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				ok = false
				break
			}
		}
		if present && ok {
			numeric[j] = true
		}
	}
	return numeric
}

// pad extends a short row to the header width so that trailing empty cells
// do not make otherwise identical rows distinct.
func (t *Table) pad(row []string) []string {
	if len(row) >= len(t.Header) {
		return row
	}
	padded := make([]string, len(t.Header))
	copy(padded, row)
	return padded
}

// Copy returns a deep copy of the table with every row padded to the
// header width.
func (t *Table) Copy() *Table {
	out := &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		r := make([]string, max(len(row), len(t.Header)))
		copy(r, row)
		out.Rows[i] = r
	}
	return out
}

// InsertColumn returns a copy of the table with a new column at position at,
// filled with value. A position outside the header appends the column.
func (t *Table) InsertColumn(at int, name, value string) *Table {
	if at < 0 || at > len(t.Header) {
		at = len(t.Header)
	}
	out := &Table{
		Header: insertAt(t.Header, at, name),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = insertAt(t.pad(row), at, value)
	}
	return out
}

// DropColumns returns a copy of the table without the named columns. Names
// that do not exist are ignored.
func (t *Table) DropColumns(names ...string) *Table {
	drop := make(map[int]bool)
	for _, n := range names {
		if i := t.Col(n); i >= 0 {
			drop[i] = true
		}
	}
	out := &Table{Rows: make([][]string, len(t.Rows))}
	for i, h := range t.Header {
		if !drop[i] {
			out.Header = append(out.Header, h)
		}
	}
	for r, row := range t.Rows {
		row = t.pad(row)
		kept := make([]string, 0, len(out.Header))
		for i, v := range row {
			if !drop[i] {
				kept = append(kept, v)
			}
		}
		out.Rows[r] = kept
	}
	return out
}

func insertAt(s []string, at int, v string) []string {
	out := make([]string, 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, v)
	return append(out, s[at:]...)
}

// ParseNumber coerces a cell to a number. Empty and non-numeric cells become
// NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatNumber renders a number in its shortest form; NaN renders empty.
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
