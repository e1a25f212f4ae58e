// Package segment turns one cleaned road into the numbered segment list used
// to generate the transport model.
package segment

import (
	"math"
	"sort"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/model"
	"github.com/sells-group/roadfix/internal/tabular"
)

// DefaultStartID is the id given to the first segment.
const DefaultStartID = 1000001

// DroppedColumns are consumed by segment extraction.
var DroppedColumns = []string{"chainage", "lrp", "gap"}

// Options selects the road and numbering.
type Options struct {
	Road    string
	StartID int
}

// Extract returns the segments of one road from a cleaned roads table.
// Rows are stable-sorted by chainage; each gets the chainage difference to
// the previous row as its length (0 for the first row and wherever chainage
// is missing), rounded to metres, and a sequential id.
func Extract(t *tabular.Table, opts Options) (*tabular.Table, error) {
	roadCol, chCol := t.Col("road"), t.Col("chainage")
	if roadCol < 0 || chCol < 0 {
		return nil, eris.New("segment: table needs road and chainage columns")
	}
	want := model.NormalizeKey(opts.Road)
	if want == "" {
		return nil, eris.New("segment: road is required")
	}

	type seg struct {
		row      []string
		chainage float64
	}
	var segs []seg
	for _, row := range t.Rows {
		if model.NormalizeKey(tabular.Cell(row, roadCol)) != want {
			continue
		}
		segs = append(segs, seg{row: row, chainage: tabular.ParseNumber(tabular.Cell(row, chCol))})
	}
	sort.SliceStable(segs, func(i, j int) bool {
		ci, cj := segs[i].chainage, segs[j].chainage
		if math.IsNaN(cj) {
			return !math.IsNaN(ci)
		}
		return ci < cj
	})

	out := &tabular.Table{Header: t.Header, Rows: make([][]string, len(segs))}
	for i, s := range segs {
		out.Rows[i] = s.row
	}
	out = setColumn(out, "length", func(i int) string {
		if i == 0 {
			return "0"
		}
		d := segs[i].chainage - segs[i-1].chainage
		if math.IsNaN(d) {
			return "0"
		}
		return tabular.FormatNumber(roundTo(d, 3))
	})
	out = out.DropColumns(DroppedColumns...)

	start := opts.StartID
	out = setColumn(out, "id", func(i int) string { return strconv.Itoa(start + i) })

	zap.L().Info("segment: extracted",
		zap.String("road", opts.Road),
		zap.Int("segments", len(out.Rows)),
	)
	return out, nil
}

// setColumn fills the named column from value, appending it when the
// table does not have it yet.
func setColumn(t *tabular.Table, name string, value func(i int) string) *tabular.Table {
	at := t.Col(name)
	if at < 0 {
		t = t.InsertColumn(len(t.Header), name, "")
		at = len(t.Header) - 1
	} else {
		t = t.Copy()
	}
	for i := range t.Rows {
		t.Rows[i][at] = value(i)
	}
	return t
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
