package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/ls"
	"tableflip.dev/docket/pkg/store"
)

func addLs(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	so := &options.ScoreOptions{}
	ro := &options.RosterOptions{}

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "list tracked documents with their picker labels",
		Example: `
docket ls
docket ls --metric recency-edit --scores
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
			l := ls.Ls{
				Persistence: p,
				Metric:      metric,
				Alphabet:    ro.ParseAlphabet(),
				ShowScore:   so.ShowScore,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddMetricArgs(cmd, so)
	options.AddShowScoreArg(cmd, so)
	options.AddRosterArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
