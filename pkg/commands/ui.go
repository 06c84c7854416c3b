package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/ui"
	"tableflip.dev/docket/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	so := &options.ScoreOptions{}
	ro := &options.RosterOptions{}

	cmd := &cobra.Command{
		Use:   "ui [path ...]",
		Short: "open the interactive document picker",
		Example: `
docket ui
docket ui --capacity 10 src/main.go src/util.go
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := so.Parse()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{
				Paths:       args,
				Metric:      metric,
				Alphabet:    ro.ParseAlphabet(),
				Capacity:    ro.Capacity,
				MaxRows:     ro.MaxRows,
				Persistence: p,
			}
			return i.Do(context.Background())
		},
	}
	options.AddMetricArgs(cmd, so)
	options.AddRosterArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
