package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/pipeline"
)

var (
	roadsInPath  string
	roadsOutPath string
)

var roadsCmd = &cobra.Command{
	Use:   "roads",
	Short: "Clean road waypoints only",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		t, err := readTable(ctx, roadsInPath)
		if err != nil {
			return err
		}

		res, err := pipeline.New(pipelineOptions(cfg)).Run(ctx, pipeline.Input{Roads: t})
		if err != nil {
			return eris.Wrap(err, "roads")
		}
		if err := writeTable(roadsOutPath, res.Roads); err != nil {
			return err
		}

		zap.L().Info("roads complete",
			zap.Int("rows", res.RoadRows),
			zap.Int("duplicates", res.RoadDuplicates),
			zap.Int("outliers", len(res.Outliers)),
		)
		return nil
	},
}

func init() {
	roadsCmd.Flags().StringVar(&roadsInPath, "roads", "", "road waypoints CSV (required)")
	roadsCmd.Flags().StringVar(&roadsOutPath, "out", "", "cleaned roads output, .csv or .xlsx (required)")
	_ = roadsCmd.MarkFlagRequired("roads")
	_ = roadsCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(roadsCmd)
}
