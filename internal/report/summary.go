// Package report writes the YAML summary of a repair run.
package report

import (
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/roadfix/internal/bridges"
	"github.com/sells-group/roadfix/internal/pipeline"
	"github.com/sells-group/roadfix/internal/roads"
)

// Summary describes one run.
type Summary struct {
	RunID     string          `yaml:"run_id"`
	StartedAt time.Time       `yaml:"started_at"`
	Inputs    Inputs          `yaml:"inputs"`
	Roads     RoadsSummary    `yaml:"roads"`
	Bridges   *BridgesSummary `yaml:"bridges,omitempty"`
	Phases    []Phase         `yaml:"phases"`
	Outputs   []string        `yaml:"outputs,omitempty"`
}

// Inputs names the files a run read.
type Inputs struct {
	Roads   string `yaml:"roads"`
	Bridges string `yaml:"bridges,omitempty"`
}

// RoadsSummary counts road rows through cleaning.
type RoadsSummary struct {
	Rows       int `yaml:"rows"`
	Duplicates int `yaml:"duplicates_removed"`
	Roads      int `yaml:"roads"`
	Outliers   int `yaml:"outliers"`
	Unlocated  int `yaml:"unlocated"` // waypoints still without coordinates
}

// BridgesSummary counts bridge rows through repair.
type BridgesSummary struct {
	Rows       int                 `yaml:"rows"`
	Duplicates int                 `yaml:"duplicates_removed"`
	Dropped    int                 `yaml:"dropped_unknown_road"`
	Repaired   int                 `yaml:"repaired"`
	Fixes      []bridges.StatEntry `yaml:"fixes"`
}

// Phase is one timed pipeline phase.
type Phase struct {
	Name       string `yaml:"name"`
	DurationMS int64  `yaml:"duration_ms"`
}

// New summarizes a pipeline result under a fresh run id.
func New(started time.Time, in Inputs, res *pipeline.Result) *Summary {
	s := &Summary{
		RunID:     uuid.New().String(),
		StartedAt: started.UTC(),
		Inputs:    in,
		Roads: RoadsSummary{
			Rows:       res.RoadRows,
			Duplicates: res.RoadDuplicates,
			Roads:      len(roads.Group(res.Waypoints)),
			Outliers:   len(res.Outliers),
		},
	}
	for _, w := range res.Waypoints {
		if math.IsNaN(w.Lat) || math.IsNaN(w.Lon) {
			s.Roads.Unlocated++
		}
	}
	for _, p := range res.Phases {
		s.Phases = append(s.Phases, Phase{Name: p.Name, DurationMS: p.Duration.Milliseconds()})
	}

	if res.Bridges != nil {
		s.Bridges = &BridgesSummary{
			Rows:       res.BridgeRows,
			Duplicates: res.BridgeDuplicates,
			Dropped:    res.Bridges.Dropped,
			Repaired:   len(res.Bridges.Bridges),
			Fixes:      res.Bridges.Stats.Sorted(),
		}
	}
	return s
}

// Write saves the summary as YAML.
func (s *Summary) Write(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return eris.Wrap(err, "report: encode summary")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	zap.L().Info("report: summary written", zap.String("path", path), zap.String("run_id", s.RunID))
	return nil
}

// Load reads a summary written by Write.
func Load(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "report: read %s", path)
	}
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrap(err, "report: parse summary")
	}
	return &s, nil
}
