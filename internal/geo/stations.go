package geo

import (
	"math"
	"sort"

	"github.com/twpayne/go-geom"
)

// Station is one surveyed point of a road: its chainage (km along the road)
// and coordinates.
type Station struct {
	Chainage float64
	Lat      float64
	Lon      float64
}

// Stations is a road's station table held as a measured line string
// (X=lon, Y=lat, M=chainage) ordered by ascending chainage. Duplicate
// chainages are kept.
type Stations struct {
	line *geom.LineString
}

// NewStations builds a station table. Stations with a missing chainage are
// skipped; the rest are stable-sorted by chainage.
func NewStations(pts []Station) *Stations {
	kept := make([]Station, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.Chainage) {
			continue
		}
		kept = append(kept, p)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Chainage < kept[j].Chainage })

	flat := make([]float64, 0, len(kept)*3)
	for _, p := range kept {
		flat = append(flat, p.Lon, p.Lat, p.Chainage)
	}
	return &Stations{line: geom.NewLineStringFlat(geom.XYM, flat)}
}

// Len returns the number of stations.
func (s *Stations) Len() int {
	return s.line.NumCoords()
}

// Line returns the underlying measured line string.
func (s *Stations) Line() *geom.LineString {
	return s.line
}

// At returns the i-th station.
func (s *Stations) At(i int) Station {
	c := s.line.Coord(i)
	return Station{Chainage: c[2], Lat: c[1], Lon: c[0]}
}

// Interpolate returns the coordinates at the given chainage, linear in
// chainage between neighbouring stations. Chainages before the first or
// after the last station take that end station's coordinates. An exact hit
// on a duplicated chainage returns the first station with that chainage.
// An empty table or a missing chainage yields NaN coordinates.
func (s *Stations) Interpolate(chainage float64) (lat, lon float64) {
	n := s.Len()
	if n == 0 || math.IsNaN(chainage) {
		return math.NaN(), math.NaN()
	}

	flat := s.line.FlatCoords()
	stride := s.line.Stride()
	m := func(i int) float64 { return flat[i*stride+2] }

	i := sort.Search(n, func(i int) bool { return m(i) >= chainage })
	switch {
	case i == n:
		last := s.At(n - 1)
		return last.Lat, last.Lon
	case i == 0 || m(i) == chainage:
		hit := s.At(i)
		return hit.Lat, hit.Lon
	}

	lo, hi := s.At(i-1), s.At(i)
	t := (chainage - lo.Chainage) / (hi.Chainage - lo.Chainage)
	return lo.Lat + (hi.Lat-lo.Lat)*t, lo.Lon + (hi.Lon-lo.Lon)*t
}
