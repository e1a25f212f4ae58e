package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/roadfix/internal/segment"
)

var (
	segmentsInPath  string
	segmentsRoad    string
	segmentsOutPath string
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Extract one cleaned road as numbered segments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := readTable(cmd.Context(), segmentsInPath)
		if err != nil {
			return err
		}

		out, err := segment.Extract(t, segment.Options{Road: segmentsRoad, StartID: cfg.Segments.StartID})
		if err != nil {
			return err
		}
		return writeTable(segmentsOutPath, out)
	},
}

func init() {
	segmentsCmd.Flags().StringVar(&segmentsInPath, "roads", "", "cleaned roads CSV (required)")
	segmentsCmd.Flags().StringVar(&segmentsRoad, "road", "", "road id, e.g. N1 (required)")
	segmentsCmd.Flags().StringVar(&segmentsOutPath, "out", "", "segments output, .csv or .xlsx (required)")
	_ = segmentsCmd.MarkFlagRequired("roads")
	_ = segmentsCmd.MarkFlagRequired("road")
	_ = segmentsCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(segmentsCmd)
}
