// Package bridges relocates bridge survey records onto the cleaned road
// network.
package bridges

import (
	"math"

	"github.com/sells-group/roadfix/internal/geo"
	"github.com/sells-group/roadfix/internal/model"
)

// Road is the lookup entry for one road of the cleaned network.
type Road struct {
	MaxChainage float64
	Stations    *geo.Stations
}

type lrpKey struct {
	road string
	lrp  string
}

type coord struct {
	lat float64
	lon float64
}

// Index answers per-road lookups for bridge repair. It is built once from
// the cleaned road waypoints and is read-only afterwards.
type Index struct {
	roads   map[string]*Road
	matches map[lrpKey]coord
}

// NewIndex builds the lookup index from cleaned road waypoints.
func NewIndex(cleaned []model.Waypoint) *Index {
	byRoad := make(map[string][]geo.Station)
	maxCh := make(map[string]float64)
	matches := make(map[lrpKey]coord)

	for _, w := range cleaned {
		road := w.RoadKey()
		byRoad[road] = append(byRoad[road], geo.Station{Chainage: w.Chainage, Lat: w.Lat, Lon: w.Lon})

		cur, seen := maxCh[road]
		if !seen || math.IsNaN(cur) || w.Chainage > cur {
			maxCh[road] = w.Chainage
		}

		lrp := w.LRPKey()
		if lrp == "" || model.IsMissing(w.Lat) || model.IsMissing(w.Lon) {
			continue
		}
		k := lrpKey{road: road, lrp: lrp}
		if _, dup := matches[k]; !dup {
			matches[k] = coord{lat: w.Lat, lon: w.Lon}
		}
	}

	idx := &Index{
		roads:   make(map[string]*Road, len(byRoad)),
		matches: matches,
	}
	for road, pts := range byRoad {
		idx.roads[road] = &Road{MaxChainage: maxCh[road], Stations: geo.NewStations(pts)}
	}
	return idx
}

// Known reports whether the cleaned network has any waypoint on the road.
func (x *Index) Known(roadKey string) bool {
	_, ok := x.roads[roadKey]
	return ok
}

// Lookup returns the road's entry. A road without a single waypoint of
// known chainage is treated as absent.
func (x *Index) Lookup(roadKey string) (*Road, bool) {
	r, ok := x.roads[roadKey]
	if !ok || r.Stations.Len() == 0 || math.IsNaN(r.MaxChainage) {
		return nil, false
	}
	return r, true
}

// Match returns the coordinates of the first cleaned waypoint whose road
// and LRP code equal the given normalized keys. Waypoints with missing
// coordinates and empty LRP codes never match.
func (x *Index) Match(roadKey, lrpKeyNorm string) (lat, lon float64, ok bool) {
	if lrpKeyNorm == "" {
		return 0, 0, false
	}
	c, ok := x.matches[lrpKey{road: roadKey, lrp: lrpKeyNorm}]
	return c.lat, c.lon, ok
}

// Roads returns the number of roads in the index.
func (x *Index) Roads() int {
	return len(x.roads)
}
