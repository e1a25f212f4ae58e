// Package roads repairs surveyed road waypoints whose GPS coordinates stray
// from their neighbours.
package roads

import (
	"context"
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/roadfix/internal/geo"
	"github.com/sells-group/roadfix/internal/model"
)

const (
	defaultOutlierKM = 10.0
	defaultWindow    = 5
)

// Options configures road repair.
type Options struct {
	OutlierKM float64 // deviation above which a waypoint is an outlier
	Window    int     // rolling median window size
	FillGaps  bool    // interpolate coordinates still missing after repair
	Workers   int     // roads repaired concurrently by RepairAll
}

// DefaultOptions returns the options used by the primary pipeline.
func DefaultOptions() Options {
	return Options{
		OutlierKM: defaultOutlierKM,
		Window:    defaultWindow,
		FillGaps:  true,
		Workers:   1,
	}
}

func (o Options) withDefaults() Options {
	if o.OutlierKM <= 0 {
		o.OutlierKM = defaultOutlierKM
	}
	if o.Window <= 0 {
		o.Window = defaultWindow
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}

// analysis is the read-only outlier computation for one road.
type analysis struct {
	sorted    []model.Waypoint
	medLat    []float64
	medLon    []float64
	deviation []float64
	outlier   []bool
}

// analyze sorts a road's waypoints by chainage and measures each one
// against the rolling median of its neighbourhood. The input is not modified.
func analyze(road []model.Waypoint, opts Options) analysis {
	sorted := SortByChainage(road)

	lats := make([]float64, len(sorted))
	lons := make([]float64, len(sorted))
	for i, w := range sorted {
		lats[i] = w.Lat
		lons[i] = w.Lon
	}

	a := analysis{
		sorted:    sorted,
		medLat:    rollingMedian(lats, opts.Window),
		medLon:    rollingMedian(lons, opts.Window),
		deviation: make([]float64, len(sorted)),
		outlier:   make([]bool, len(sorted)),
	}
	for i := range sorted {
		a.deviation[i] = geo.Haversine(lats[i], lons[i], a.medLat[i], a.medLon[i])
		a.outlier[i] = a.deviation[i] > opts.OutlierKM
	}
	return a
}

// SortByChainage returns a copy of the waypoints stable-sorted by ascending
// chainage. Missing chainages sort last.
func SortByChainage(road []model.Waypoint) []model.Waypoint {
	sorted := make([]model.Waypoint, len(road))
	copy(sorted, road)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Chainage, sorted[j].Chainage
		if math.IsNaN(cj) {
			return !math.IsNaN(ci)
		}
		return ci < cj
	})
	return sorted
}

// Repair returns a corrected copy of one road's waypoints in chainage order.
// Outliers are moved to their rolling median; no waypoint is dropped.
func Repair(road []model.Waypoint, opts Options) []model.Waypoint {
	opts = opts.withDefaults()
	a := analyze(road, opts)

	out := a.sorted
	for i := range out {
		if a.outlier[i] {
			out[i].Lat = a.medLat[i]
			out[i].Lon = a.medLon[i]
		}
	}

	if opts.FillGaps {
		lats := make([]float64, len(out))
		lons := make([]float64, len(out))
		for i, w := range out {
			lats[i] = w.Lat
			lons[i] = w.Lon
		}
		lats, lons = fillGaps(lats), fillGaps(lons)
		for i := range out {
			out[i].Lat = lats[i]
			out[i].Lon = lons[i]
		}
	}
	return out
}

// Group splits waypoints into roads keyed by normalized road id, keeping
// input order within each road.
func Group(waypoints []model.Waypoint) map[string][]model.Waypoint {
	groups := make(map[string][]model.Waypoint)
	for _, w := range waypoints {
		k := w.RoadKey()
		groups[k] = append(groups[k], w)
	}
	return groups
}

// Keys returns the road ids of groups in ascending order.
func Keys(groups map[string][]model.Waypoint) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RepairAll repairs every road independently. Roads come back in ascending
// road id order, each in chainage order. Up to opts.Workers roads are
// repaired at once.
func RepairAll(ctx context.Context, waypoints []model.Waypoint, opts Options) ([]model.Waypoint, error) {
	opts = opts.withDefaults()
	groups := Group(waypoints)
	keys := Keys(groups)

	repaired := make([][]model.Waypoint, len(keys))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, k := range keys {
		i, k := i, k
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return eris.Wrap(err, "roads: repair cancelled")
			}
			repaired[i] = Repair(groups[k], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.Waypoint, 0, len(waypoints))
	for _, r := range repaired {
		out = append(out, r...)
	}

	zap.L().Debug("roads: repaired",
		zap.Int("roads", len(keys)),
		zap.Int("waypoints", len(out)),
	)
	return out, nil
}

// Outliers reports the outlying waypoints of every road without changing
// them, largest deviation first.
func Outliers(waypoints []model.Waypoint, opts Options) []model.Outlier {
	opts = opts.withDefaults()
	groups := Group(waypoints)

	var out []model.Outlier
	for _, k := range Keys(groups) {
		a := analyze(groups[k], opts)
		for i, w := range a.sorted {
			if !a.outlier[i] {
				continue
			}
			out = append(out, model.Outlier{
				Waypoint:    w,
				MedianLat:   a.medLat[i],
				MedianLon:   a.medLon[i],
				DeviationKM: a.deviation[i],
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DeviationKM > out[j].DeviationKM })
	return out
}
