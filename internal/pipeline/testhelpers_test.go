package pipeline

import (
	"github.com/sells-group/roadfix/internal/tabular"
)

// surveyRoads is road N1 at chainage 0..4 with lat 23.00..23.04 along lon 90,
// a stray fix at chainage 2 and one exact duplicate row.
func surveyRoads() *tabular.Table {
	return &tabular.Table{
		Header: []string{"road", "chainage", "lrp", "lat", "lon", "type"},
		Rows: [][]string{
			{"N1", "0", "LRPS", "23", "90", "KmPost"},
			{"N1", "1", "L1", "23.01", "90", "KmPost"},
			{"N1", "3", "L3", "23.03", "90", "KmPost"},
			{"N1", "2", "L2", "25", "90", "Bridge"},
			{"N1", "4", "LRPE", "23.04", "90", "KmPost"},
			{"N1", "0", "LRPS", "23", "90", "KmPost"},
		},
	}
}

func surveyBridges() *tabular.Table {
	return &tabular.Table{
		Header: []string{"road", "km", "LRPName", "name", "lat", "lon", "length"},
		Rows: [][]string{
			{"N1", "2", "L2", "Old bridge", "", "", "12.5"},
			{"N1", "1.5", "", "Culvert", "0", "0", "n/a"},
			{"Z9", "1", "", "Lost bridge", "", "", "3"},
			{"N1", "2", "L2", "Old bridge", "", "", "12.5"},
		},
	}
}
