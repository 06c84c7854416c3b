// Package keys provides CLI helpers to display the roster legend.
package keys

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/docket/pkg/glyph"
)

// Keys prints the marker and indicator legend.
type Keys struct{}

// Do renders both legends to stdout.
func (k *Keys) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	all := glyph.DefaultGlyphs()
	markers := make([]glyph.Glyph, 0, len(all))
	indicators := make([]glyph.Glyph, 0, len(all))
	for _, g := range all {
		if g.Indicator {
			indicators = append(indicators, g)
		} else {
			markers = append(markers, g)
		}
	}

	k.legend(ctx, "Markers", markers)
	_, _ = fmt.Fprintln(color.Output, "")
	k.legend(ctx, "Indicators", indicators)
	fmt.Println("")
	return nil
}

func (k *Keys) legend(_ context.Context, title string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Meaning"))
	for _, g := range glyfs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
