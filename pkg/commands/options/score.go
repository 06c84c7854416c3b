package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/score"
)

// ScoreOptions selects the ordering metric for listing and eviction.
type ScoreOptions struct {
	Metric    string
	ShowScore bool
}

func AddMetricArgs(cmd *cobra.Command, o *ScoreOptions) {
	cmd.Flags().StringVarP(&o.Metric, "metric", "m", "frecency-access",
		"Ordering metric: recency-access, recency-edit, frecency-access, or frecency-edit.")
}

func AddShowScoreArg(cmd *cobra.Command, o *ScoreOptions) {
	cmd.Flags().BoolVar(&o.ShowScore, "scores", false,
		"Show the raw metric value per document.")
}

// Parse resolves the flag value into a Metric.
func (o *ScoreOptions) Parse() (score.Metric, error) {
	m, ok := score.ParseMetric(o.Metric)
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", o.Metric)
	}
	return m, nil
}
