package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/pipeline"
	"github.com/sells-group/roadfix/internal/roads"
)

var (
	outliersInPath  string
	outliersOutPath string
)

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "Report road waypoints that stray from their neighbours",
	Long:  "Lists every waypoint further than roads.outlier_km from the rolling median of its road, largest deviation first. Nothing is modified.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := readTable(cmd.Context(), outliersInPath)
		if err != nil {
			return err
		}

		t, dups := t.Dedupe()
		wps, err := pipeline.Waypoints(t)
		if err != nil {
			return eris.Wrap(err, "outliers")
		}

		found := roads.Outliers(wps, pipelineOptions(cfg).Roads)
		if err := writeTable(outliersOutPath, pipeline.OutliersTable(t, found)); err != nil {
			return err
		}

		zap.L().Info("outliers complete",
			zap.Int("waypoints", len(wps)),
			zap.Int("duplicates", dups),
			zap.Int("outliers", len(found)),
		)
		return nil
	},
}

func init() {
	outliersCmd.Flags().StringVar(&outliersInPath, "roads", "", "road waypoints CSV (required)")
	outliersCmd.Flags().StringVar(&outliersOutPath, "out", "", "report output, .csv or .xlsx (required)")
	_ = outliersCmd.MarkFlagRequired("roads")
	_ = outliersCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(outliersCmd)
}
