// Package pipeline sequences the survey repair run: duplicate removal, road
// cleaning, lookup index construction and bridge repair.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/bridges"
	"github.com/sells-group/roadfix/internal/model"
	"github.com/sells-group/roadfix/internal/roads"
	"github.com/sells-group/roadfix/internal/tabular"
)

// Options configures a run.
type Options struct {
	Roads           roads.Options
	InsertGapColumn bool
}

// DefaultOptions returns the options of the primary pipeline.
func DefaultOptions() Options {
	return Options{
		Roads:           roads.DefaultOptions(),
		InsertGapColumn: true,
	}
}

// Input holds the raw tables for a run. Bridges may be nil for a roads-only
// run.
type Input struct {
	Roads   *tabular.Table
	Bridges *tabular.Table
}

// PhaseResult records one completed phase.
type PhaseResult struct {
	Name     string
	Duration time.Duration
}

// Result is everything a run produces.
type Result struct {
	RoadRows         int // road rows after duplicate removal
	RoadDuplicates   int
	BridgeRows       int // bridge rows after duplicate removal
	BridgeDuplicates int

	Waypoints    []model.Waypoint // cleaned, road by road in chainage order
	Roads        *tabular.Table
	Outliers     []model.Outlier
	OutlierTable *tabular.Table

	Bridges     *bridges.Result // nil for a roads-only run
	BridgeTable *tabular.Table

	Phases []PhaseResult
}

// Pipeline runs the repair phases in order.
type Pipeline struct {
	opts Options
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Run executes the full repair on in-memory tables. Road cleaning finishes
// for every road before the bridge lookup index is built.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Result, error) {
	if in.Roads == nil {
		return nil, eris.New("pipeline: roads table is required")
	}

	log := zap.L().With(zap.String("component", "pipeline"))
	result := &Result{}

	trackPhase := func(name string, fn func() error) error {
		start := time.Now()
		err := fn()
		d := time.Since(start)
		if err != nil {
			log.Error("pipeline: phase failed", zap.String("phase", name), zap.Int64("duration_ms", d.Milliseconds()), zap.Error(err))
			return err
		}
		log.Info("pipeline: phase complete", zap.String("phase", name), zap.Int64("duration_ms", d.Milliseconds()))
		result.Phases = append(result.Phases, PhaseResult{Name: name, Duration: d})
		return nil
	}

	// Phase 1: dedupe and parse roads.
	var roadsTbl *tabular.Table
	var waypoints []model.Waypoint
	if err := trackPhase("load_roads", func() error {
		roadsTbl, result.RoadDuplicates = in.Roads.Dedupe()
		result.RoadRows = len(roadsTbl.Rows)
		log.Info("pipeline: duplicate road rows removed", zap.Int("removed", result.RoadDuplicates))

		var err error
		waypoints, err = Waypoints(roadsTbl)
		return err
	}); err != nil {
		return nil, err
	}

	// Phase 2: outlier report on the raw coordinates.
	if err := trackPhase("outlier_report", func() error {
		if err := ctx.Err(); err != nil {
			return eris.Wrap(err, "pipeline: outlier report")
		}
		result.Outliers = roads.Outliers(waypoints, p.opts.Roads)
		result.OutlierTable = OutliersTable(roadsTbl, result.Outliers)
		log.Info("pipeline: road outliers found", zap.Int("outliers", len(result.Outliers)))
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 3: clean roads. Every road completes before bridges start.
	if err := trackPhase("clean_roads", func() error {
		cleaned, err := roads.RepairAll(ctx, waypoints, p.opts.Roads)
		if err != nil {
			return eris.Wrap(err, "pipeline: clean roads")
		}
		result.Waypoints = cleaned
		result.Roads = RoadsTable(roadsTbl, cleaned, p.opts.InsertGapColumn)
		return nil
	}); err != nil {
		return nil, err
	}

	if in.Bridges == nil {
		return result, nil
	}

	// Phase 4: repair bridges against the cleaned network.
	if err := trackPhase("repair_bridges", func() error {
		bridgeTbl, dups := in.Bridges.Dedupe()
		result.BridgeRows = len(bridgeTbl.Rows)
		result.BridgeDuplicates = dups
		log.Info("pipeline: duplicate bridge rows removed", zap.Int("removed", dups))

		records, err := Bridges(bridgeTbl)
		if err != nil {
			return err
		}

		idx := bridges.NewIndex(result.Waypoints)
		result.Bridges = bridges.Repair(records, idx)
		result.BridgeTable = bridges.Project(result.Bridges.Bridges)
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}
