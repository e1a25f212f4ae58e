package tabular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Header: []string{"road", " chainage", "lat", "lon", "type"},
		Rows: [][]string{
			{"N1", "0", "23.7", "90.4", "KmPost"},
			{"N1", "1.2", "23.71", "90.41", "Bridge"},
			{"N1", "0", "23.7", "90.4", "KmPost"},
			{"N2", "5"},
		},
	}
}

func TestTable_Col(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 0, tbl.Col("road"))
	assert.Equal(t, 1, tbl.Col("chainage"), "header names are trimmed")
	assert.Equal(t, -1, tbl.Col("missing"))
	assert.True(t, tbl.HasCol("type"))
	assert.False(t, tbl.HasCol("gap"))
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}
	assert.Equal(t, "b", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 2))
	assert.Equal(t, "", Cell(row, -1))
}

func TestTable_Record(t *testing.T) {
	tbl := sampleTable()
	rec := tbl.Record(tbl.Rows[3])
	assert.Equal(t, map[string]string{"road": "N2", "chainage": "5"}, rec)

	_, ok := rec["lat"]
	assert.False(t, ok, "short rows leave cells absent")
}

func TestTable_Dedupe(t *testing.T) {
	tbl := sampleTable()
	out, removed := tbl.Dedupe()
	assert.Equal(t, 1, removed)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, "1.2", out.Rows[1][1])
	assert.Equal(t, "N2", out.Rows[2][0])

	// Original untouched.
	assert.Len(t, tbl.Rows, 4)
}

func TestTable_DedupeShortRows(t *testing.T) {
	tbl := &Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"x"}, {"x", ""}, {"x", "y"}},
	}
	out, removed := tbl.Dedupe()
	assert.Equal(t, 1, removed)
	assert.Len(t, out.Rows, 2)
}

func TestTable_DedupeNumericColumns(t *testing.T) {
	tbl := &Table{
		Header: []string{"road", "km", "name"},
		Rows: [][]string{
			{"N1", "1.5", "Bridge A"},
			{"N1", "1.50", "Bridge A"},
			{"N1", " 1.5", "Bridge A"},
			{"N1", "", "Bridge A"},
			{"N1", "", "Bridge A"},
		},
	}
	out, removed := tbl.Dedupe()
	assert.Equal(t, 3, removed)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "1.5", out.Rows[0][1], "first occurrence is kept as written")
	assert.Equal(t, "", out.Rows[1][1])

	// A column holding any text compares cells as written.
	mixed := &Table{
		Header: []string{"lrp"},
		Rows:   [][]string{{"1.5"}, {"1.50"}, {"LRPS"}},
	}
	_, removed = mixed.Dedupe()
	assert.Equal(t, 0, removed)
}

func TestTable_InsertColumn(t *testing.T) {
	tbl := sampleTable()
	out := tbl.InsertColumn(tbl.Col("type"), "gap", "")

	assert.Equal(t, []string{"road", " chainage", "lat", "lon", "gap", "type"}, out.Header)
	assert.Equal(t, []string{"N1", "0", "23.7", "90.4", "", "KmPost"}, out.Rows[0])
	assert.Equal(t, []string{"N2", "5", "", "", "", ""}, out.Rows[3])

	appended := tbl.InsertColumn(-1, "gap", "")
	assert.Equal(t, "gap", appended.Header[len(appended.Header)-1])
	assert.Len(t, tbl.Header, 5)
}

func TestTable_Copy(t *testing.T) {
	tbl := sampleTable()
	out := tbl.Copy()

	assert.Equal(t, tbl.Header, out.Header)
	assert.Equal(t, []string{"N2", "5", "", "", ""}, out.Rows[3])

	out.Rows[0][0] = "changed"
	out.Header[0] = "changed"
	assert.Equal(t, "N1", tbl.Rows[0][0])
	assert.Equal(t, "road", tbl.Header[0])
}

func TestTable_DropColumns(t *testing.T) {
	tbl := sampleTable()
	out := tbl.DropColumns("chainage", "type", "nope")

	assert.Equal(t, []string{"road", "lat", "lon"}, out.Header)
	assert.Equal(t, []string{"N1", "23.71", "90.41"}, out.Rows[1])
	assert.Equal(t, []string{"N2", "", ""}, out.Rows[3])
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		missing bool
	}{
		{"1.5", 1.5, false},
		{" 42 ", 42, false},
		{"-0.25", -0.25, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12km", 0, true},
		{"NaN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseNumber(tt.in)
			if tt.missing {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "23.7", FormatNumber(23.7))
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "0.001", FormatNumber(0.001))
	assert.Equal(t, "", FormatNumber(math.NaN()))
}
