package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/bridges"
	"github.com/sells-group/roadfix/internal/config"
	"github.com/sells-group/roadfix/internal/pipeline"
	"github.com/sells-group/roadfix/internal/roads"
	"github.com/sells-group/roadfix/internal/tabular"
)

// pipelineOptions maps the loaded configuration onto the pipeline.
func pipelineOptions(c *config.Config) pipeline.Options {
	return pipeline.Options{
		Roads: roads.Options{
			OutlierKM: c.Roads.OutlierKM,
			Window:    c.Roads.Window,
			FillGaps:  c.Roads.FillGaps,
			Workers:   c.Roads.Workers,
		},
		InsertGapColumn: c.Roads.InsertGapColumn,
	}
}

func readTable(ctx context.Context, path string) (*tabular.Table, error) {
	t, err := tabular.Read(ctx, path, tabular.ReadOptions{
		CSV: tabular.CSVOptions{LazyQuotes: true},
	})
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", path)
	}
	zap.L().Info("table loaded", zap.String("path", path), zap.Int("rows", len(t.Rows)))
	return t, nil
}

// writeTable saves a table by extension. Bridge output keeps its numeric
// columns numeric in XLSX.
func writeTable(path string, t *tabular.Table) error {
	if err := tabular.Write(path, cfg.Bridges.Sheet, t, bridges.NumericColumns...); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	zap.L().Info("table written", zap.String("path", path), zap.Int("rows", len(t.Rows)))
	return nil
}
