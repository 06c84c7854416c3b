// Package ui launches the interactive picker over the tracked set.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/docket/pkg/item"
	"tableflip.dev/docket/pkg/label"
	"tableflip.dev/docket/pkg/score"
	"tableflip.dev/docket/pkg/store"
	"tableflip.dev/docket/pkg/tui/app"
)

// UI opens the full-screen picker. Paths overrides the roster; when
// empty, every tracked document is shown.
type UI struct {
	Paths       []string
	Metric      score.Metric
	Alphabet    label.Alphabet
	Capacity    int
	MaxRows     int
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}

	paths := d.Paths
	if len(paths) == 0 {
		paths = d.Persistence.Paths(ctx)
	}
	if len(paths) == 0 {
		return errors.New("nothing to show; track a document first")
	}

	roster := item.NewRoster()
	for _, p := range paths {
		h, _ := d.Persistence.History(p)
		roster.Add(item.Item{ID: item.ID(p), Path: p, History: h})
	}

	return app.Run(d.Persistence, roster, app.Options{
		Metric:   d.Metric,
		Alphabet: d.Alphabet,
		Capacity: d.Capacity,
		MaxRows:  d.MaxRows,
	})
}
