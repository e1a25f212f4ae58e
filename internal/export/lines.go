// Package export writes the cleaned road network and repaired bridges as
// GeoJSON and ESRI shapefiles for inspection in a GIS.
package export

import (
	"math"

	"github.com/sells-group/roadfix/internal/geo"
	"github.com/sells-group/roadfix/internal/model"
)

// RoadLine is one road drawn through its located waypoints in chainage
// order. Coordinates are lon/lat pairs.
type RoadLine struct {
	Road      string
	Coords    [][2]float64
	Waypoints int // waypoints on the road, located or not
}

// LengthKM is the great-circle length of the line.
func (l RoadLine) LengthKM() float64 {
	var total float64
	for i := 1; i < len(l.Coords); i++ {
		a, b := l.Coords[i-1], l.Coords[i]
		total += geo.Haversine(a[1], a[0], b[1], b[0])
	}
	return total
}

// RoadLines groups cleaned waypoints into one line per road, in first
// appearance order. Waypoints without coordinates are skipped and roads
// with fewer than two located waypoints are left out.
func RoadLines(wps []model.Waypoint) []RoadLine {
	idx := make(map[string]int)
	var lines []RoadLine
	for _, w := range wps {
		k := w.RoadKey()
		i, ok := idx[k]
		if !ok {
			i = len(lines)
			idx[k] = i
			lines = append(lines, RoadLine{Road: w.Road})
		}
		lines[i].Waypoints++
		if located(w.Lat, w.Lon) {
			lines[i].Coords = append(lines[i].Coords, [2]float64{w.Lon, w.Lat})
		}
	}

	out := lines[:0]
	for _, l := range lines {
		if len(l.Coords) >= 2 {
			out = append(out, l)
		}
	}
	return out
}

// locatedBridges returns the repaired bridges that have a position.
func locatedBridges(bs []model.RepairedBridge) []model.RepairedBridge {
	out := make([]model.RepairedBridge, 0, len(bs))
	for _, b := range bs {
		if located(b.Fix.Lat, b.Fix.Lon) {
			out = append(out, b)
		}
	}
	return out
}

func located(lat, lon float64) bool {
	return !math.IsNaN(lat) && !math.IsNaN(lon)
}
