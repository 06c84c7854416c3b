package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/evict"
	"tableflip.dev/docket/pkg/store"
)

func addEvict(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	so := &options.ScoreOptions{}
	ro := &options.RosterOptions{}
	apply := false

	cmd := &cobra.Command{
		Use:   "evict",
		Short: "show which documents fall off a bounded roster",
		Example: `
docket evict --capacity 10
docket evict --capacity 10 --apply
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := so.Parse()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e := evict.Evict{
				Capacity:    ro.Capacity,
				Metric:      metric,
				Apply:       apply,
				Persistence: p,
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddMetricArgs(cmd, so)
	options.AddRosterArgs(cmd, ro)
	cmd.Flags().BoolVar(&apply, "apply", false,
		"Forget the evicted histories instead of only printing the plan.")

	topLevel.AddCommand(cmd)
}
