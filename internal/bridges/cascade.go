package bridges

import (
	"math"

	"github.com/sells-group/roadfix/internal/model"
)

const (
	// An overshoot below either bound is measurement noise, not a typo.
	smallOvershootRatio = 1.1
	smallOvershootKM    = 1.0

	// Chainage entered in the wrong unit or with a slipped decimal point.
	typoFactor = 10.0
)

// candidate is everything a rule may look at for one bridge.
type candidate struct {
	bridge   model.Bridge
	matched  bool
	matchLat float64
	matchLon float64
	road     *Road // nil when the road has no usable station table
}

func (c candidate) km() float64 { return c.bridge.KM }

// rule is one step of the repair cascade. applies is only consulted when
// every earlier rule declined; locate produces the repaired coordinates.
type rule struct {
	method  model.FixMethod
	applies func(c candidate) bool
	locate  func(c candidate) (lat, lon float64)
}

// interpolateAt locates the bridge at the chainage chosen by pick.
func interpolateAt(pick func(c candidate) float64) func(c candidate) (float64, float64) {
	return func(c candidate) (float64, float64) {
		return c.road.Stations.Interpolate(pick(c))
	}
}

// cascade is evaluated top to bottom; the first rule that applies wins.
var cascade = []rule{
	{
		method:  model.FixMatchedLRP,
		applies: func(c candidate) bool { return c.matched },
		locate:  func(c candidate) (float64, float64) { return c.matchLat, c.matchLon },
	},
	{
		method:  model.FixRoadMissing,
		applies: func(c candidate) bool { return model.IsMissing(c.km()) || c.road == nil },
		locate:  func(c candidate) (float64, float64) { return c.bridge.Lat, c.bridge.Lon },
	},
	{
		method: model.FixInterpolated,
		applies: func(c candidate) bool {
			return c.km() >= 0 && c.km() <= c.road.MaxChainage
		},
		locate: interpolateAt(candidate.km),
	},
	{
		method: model.FixSnappedSmall,
		applies: func(c candidate) bool {
			return c.km() < c.road.MaxChainage*smallOvershootRatio || c.km()-c.road.MaxChainage < smallOvershootKM
		},
		locate: interpolateAt(func(c candidate) float64 { return c.road.MaxChainage }),
	},
	{
		method:  model.FixTypoDiv10,
		applies: func(c candidate) bool { return c.km()/typoFactor <= c.road.MaxChainage },
		locate:  interpolateAt(func(c candidate) float64 { return c.km() / typoFactor }),
	},
	{
		method:  model.FixSnappedShort,
		applies: func(candidate) bool { return true },
		locate: interpolateAt(func(c candidate) float64 {
			return math.Max(0, math.Min(c.km(), c.road.MaxChainage))
		}),
	},
}

// Locate decides where one bridge belongs. It never fails: a bridge that
// cannot be placed keeps its surveyed coordinates and is tagged
// model.FixRoadMissing.
func Locate(b model.Bridge, idx *Index) model.Fix {
	c := candidate{bridge: b}
	road := b.RoadKey()
	c.matchLat, c.matchLon, c.matched = idx.Match(road, b.LRPKey())
	if r, ok := idx.Lookup(road); ok {
		c.road = r
	}

	for _, r := range cascade {
		if r.applies(c) {
			lat, lon := r.locate(c)
			return model.Fix{Lat: lat, Lon: lon, Method: r.method}
		}
	}
	// Unreachable: the last rule always applies.
	return model.Fix{Lat: b.Lat, Lon: b.Lon, Method: model.FixRoadMissing}
}
