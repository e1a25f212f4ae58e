package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/export"
	"github.com/sells-group/roadfix/internal/pipeline"
	"github.com/sells-group/roadfix/internal/report"
	"github.com/sells-group/roadfix/internal/tabular"
)

// Output file names inside --out-dir.
const (
	cleanRoadsFile   = "_roads3.csv"
	cleanBridgesFile = "BMMS_overview.xlsx"
	outliersFile     = "outliers.csv"
	summaryFile      = "summary.yaml"
)

var (
	cleanRoadsPath   string
	cleanBridgesPath string
	cleanOutDir      string
	cleanGeoJSON     bool
	cleanShapefile   bool
	cleanMetricsFile string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean roads and repair bridge locations",
	Long:  "Runs the full repair: duplicate removal, road outlier cleaning, then bridge relocation against the cleaned network. Writes the cleaned tables, the outlier report and a YAML run summary.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		started := time.Now()

		in := pipeline.Input{}
		var err error
		if in.Roads, err = readTable(ctx, cleanRoadsPath); err != nil {
			return err
		}
		if cleanBridgesPath != "" {
			if in.Bridges, err = readTable(ctx, cleanBridgesPath); err != nil {
				return err
			}
		}

		res, err := pipeline.New(pipelineOptions(cfg)).Run(ctx, in)
		if err != nil {
			return eris.Wrap(err, "clean")
		}
		if err := os.MkdirAll(cleanOutDir, 0o755); err != nil {
			return eris.Wrap(err, "clean: create output dir")
		}

		var outputs []string
		write := func(name string, t *tabular.Table) error {
			path := filepath.Join(cleanOutDir, name)
			if err := writeTable(path, t); err != nil {
				return err
			}
			outputs = append(outputs, path)
			return nil
		}

		if err := write(cleanRoadsFile, res.Roads); err != nil {
			return err
		}
		if err := write(outliersFile, res.OutlierTable); err != nil {
			return err
		}
		if res.BridgeTable != nil {
			if err := write(cleanBridgesFile, res.BridgeTable); err != nil {
				return err
			}
		}

		exported, err := exportNetwork(res)
		if err != nil {
			return err
		}
		outputs = append(outputs, exported...)

		summary := report.New(started, report.Inputs{Roads: cleanRoadsPath, Bridges: cleanBridgesPath}, res)
		summary.Outputs = outputs
		if err := summary.Write(filepath.Join(cleanOutDir, summaryFile)); err != nil {
			return err
		}
		if cleanMetricsFile != "" {
			m := report.NewMetrics()
			m.Observe(summary)
			if err := m.WriteTextfile(cleanMetricsFile); err != nil {
				return err
			}
		}

		zap.L().Info("clean complete",
			zap.String("run_id", summary.RunID),
			zap.Int("roads_rows", res.RoadRows),
			zap.Int("outliers", len(res.Outliers)),
			zap.Duration("elapsed", time.Since(started)),
		)
		return nil
	},
}

// exportNetwork writes the optional GIS layers and returns their paths.
func exportNetwork(res *pipeline.Result) ([]string, error) {
	var paths []string
	if cleanGeoJSON {
		p := filepath.Join(cleanOutDir, "roads.geojson")
		if err := export.WriteRoadsGeoJSON(p, res.Waypoints); err != nil {
			return nil, err
		}
		paths = append(paths, p)
		if res.Bridges != nil {
			p = filepath.Join(cleanOutDir, "bridges.geojson")
			if err := export.WriteBridgesGeoJSON(p, res.Bridges.Bridges); err != nil {
				return nil, err
			}
			paths = append(paths, p)
		}
	}
	if cleanShapefile {
		p := filepath.Join(cleanOutDir, "roads.shp")
		if err := export.WriteRoadsShapefile(p, res.Waypoints); err != nil {
			return nil, err
		}
		paths = append(paths, p)
		if res.Bridges != nil {
			p = filepath.Join(cleanOutDir, "bridges.shp")
			if err := export.WriteBridgesShapefile(p, res.Bridges.Bridges); err != nil {
				return nil, err
			}
			paths = append(paths, p)
		}
	}
	return paths, nil
}

func init() {
	cleanCmd.Flags().StringVar(&cleanRoadsPath, "roads", "", "road waypoints CSV (required)")
	cleanCmd.Flags().StringVar(&cleanBridgesPath, "bridges", "", "bridge table, .xlsx or .csv")
	cleanCmd.Flags().StringVar(&cleanOutDir, "out-dir", "", "output directory (required)")
	cleanCmd.Flags().BoolVar(&cleanGeoJSON, "geojson", false, "also write roads and bridges as GeoJSON")
	cleanCmd.Flags().BoolVar(&cleanShapefile, "shapefile", false, "also write roads and bridges as shapefiles")
	cleanCmd.Flags().StringVar(&cleanMetricsFile, "metrics-file", "", "write run gauges for the node exporter textfile collector")
	_ = cleanCmd.MarkFlagRequired("roads")
	_ = cleanCmd.MarkFlagRequired("out-dir")
	rootCmd.AddCommand(cleanCmd)
}
