package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/track"
	"tableflip.dev/docket/pkg/store"
)

func addTrack(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	to := &options.TrackOptions{}

	cmd := &cobra.Command{
		Use:   "track <path>",
		Short: "record document activity",
		Example: `
docket track src/main.go
docket track --edit --prune 4w src/main.go
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a document path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := track.Track{
				Path:        args[0],
				Edit:        to.Edit,
				PruneWindow: to.Prune,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddTrackArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
