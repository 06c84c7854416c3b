package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/label"
)

// RosterOptions bounds the interactive roster.
type RosterOptions struct {
	Capacity int
	Alphabet string
	MaxRows  int
}

func AddRosterArgs(cmd *cobra.Command, o *RosterOptions) {
	cmd.Flags().IntVarP(&o.Capacity, "capacity", "n", 0,
		"Maximum documents kept on the roster; 0 disables eviction.")
	cmd.Flags().StringVarP(&o.Alphabet, "alphabet", "a", "",
		"Label keys in priority order; empty uses a-z, A-Z, 0-9.")
	cmd.Flags().IntVar(&o.MaxRows, "rows", 0,
		"Maximum picker rows per page; 0 uses the window height.")
}

// ParseAlphabet resolves the alphabet flag, empty meaning the default.
func (o *RosterOptions) ParseAlphabet() label.Alphabet {
	if o.Alphabet == "" {
		return label.DefaultAlphabet()
	}
	return label.ParseAlphabet(o.Alphabet)
}
