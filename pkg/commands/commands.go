package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "docket",
		Short: base.Wrap80("Label, list, and pick recently used documents."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLs(topLevel)
	addTrack(topLevel)
	addEvict(topLevel)
	addKeys(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
