package options

import (
	"github.com/spf13/cobra"
)

// TrackOptions selects what a track invocation records.
type TrackOptions struct {
	Edit  bool
	Prune string
}

func AddTrackArgs(cmd *cobra.Command, o *TrackOptions) {
	cmd.Flags().BoolVarP(&o.Edit, "edit", "e", false,
		"Record an edit instead of an access.")
	cmd.Flags().StringVar(&o.Prune, "prune", "",
		`Drop history older than this window after recording, e.g. "4w" or "30d".`)
}
