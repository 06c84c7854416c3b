// Package track records document activity into the history store.
package track

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/docket/pkg/store"
	"tableflip.dev/docket/pkg/timeutil"
)

// Track appends an access or edit event for one document path.
type Track struct {
	Path        string
	Edit        bool
	PruneWindow string
	Persistence store.Persistence
}

// Do records the event and optionally prunes history older than the
// window.
func (n *Track) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not track, no persistence")
	}
	if n.Path == "" {
		return errors.New("can not track, no document path")
	}

	kind := store.Access
	verb := "access"
	if n.Edit {
		kind = store.Edit
		verb = "edit"
	}
	now := time.Now()
	if err := n.Persistence.Record(n.Path, kind, now); err != nil {
		return err
	}

	if n.PruneWindow != "" {
		window, label, err := timeutil.ParseWindow(n.PruneWindow)
		if err != nil {
			return err
		}
		if err := n.Persistence.Prune(n.Path, now.Add(-window)); err != nil {
			return fmt.Errorf("prune %s: %w", label, err)
		}
	}

	fmt.Printf("recorded %s for %s\n", verb, n.Path)
	return nil
}
