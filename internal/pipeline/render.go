package pipeline

import (
	"github.com/sells-group/roadfix/internal/model"
	"github.com/sells-group/roadfix/internal/tabular"
)

// RoadsTable renders cleaned waypoints with the source table's columns, in
// cleaned order. Chainage and coordinates are written as numbers; every
// other cell is copied from the source row. With insertGap an empty "gap"
// column goes in front of "type" (or last when there is no "type").
func RoadsTable(src *tabular.Table, cleaned []model.Waypoint, insertGap bool) *tabular.Table {
	out := &tabular.Table{
		Header: append([]string(nil), src.Header...),
		Rows:   make([][]string, len(cleaned)),
	}
	for i, w := range cleaned {
		out.Rows[i] = numericRow(src, w)
	}

	if insertGap && !out.HasCol(ColGap) {
		out = out.InsertColumn(out.Col(ColType), ColGap, "")
	}
	return out
}

// OutliersTable renders the outlier report: source columns plus
// deviation_km, in report order.
func OutliersTable(src *tabular.Table, outliers []model.Outlier) *tabular.Table {
	out := &tabular.Table{
		Header: append(append([]string(nil), src.Header...), ColDeviation),
		Rows:   make([][]string, len(outliers)),
	}
	for i, o := range outliers {
		out.Rows[i] = append(numericRow(src, o.Waypoint), tabular.FormatNumber(o.DeviationKM))
	}
	return out
}

// numericRow copies the waypoint's source row, padded to the header width,
// with chainage, lat and lon replaced by the waypoint's values.
func numericRow(src *tabular.Table, w model.Waypoint) []string {
	row := make([]string, len(src.Header))
	if w.Row >= 0 && w.Row < len(src.Rows) {
		copy(row, src.Rows[w.Row])
	}
	set := func(col string, v float64) {
		if i := src.Col(col); i >= 0 {
			row[i] = tabular.FormatNumber(v)
		}
	}
	set(ColChainage, w.Chainage)
	set(ColLat, w.Lat)
	set(ColLon, w.Lon)
	return row
}
