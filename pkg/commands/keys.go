package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/keys"
)

func addKeys(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the roster markers and strip indicators",
		Example: `
docket keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := keys.Keys{}
			return oo.HandleError(k.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
