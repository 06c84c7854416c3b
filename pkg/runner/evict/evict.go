// Package evict reports which tracked documents the capacity enforcer
// would remove first.
package evict

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/docket/pkg/capacity"
	"tableflip.dev/docket/pkg/item"
	"tableflip.dev/docket/pkg/name"
	"tableflip.dev/docket/pkg/score"
	"tableflip.dev/docket/pkg/store"
)

// Evict prints the eviction order down to the capacity bound. With
// Apply set it also forgets the evicted histories.
type Evict struct {
	Capacity    int
	Metric      score.Metric
	Apply       bool
	Persistence store.Persistence
}

// Do plans (and optionally applies) evictions against the tracked set.
func (n *Evict) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not evict, no persistence")
	}
	if n.Capacity < 0 {
		return errors.New("capacity must not be negative")
	}

	histories := n.Persistence.All(ctx)
	paths := make([]string, 0, len(histories))
	for path := range histories {
		paths = append(paths, path)
	}
	// Deterministic encounter order for tie-breaking.
	sort.Strings(paths)

	items := make([]item.Item, 0, len(paths))
	for _, path := range paths {
		items = append(items, item.Item{ID: item.ID(path), Path: path, History: histories[path]})
	}

	now := time.Now()
	plan := capacity.Plan(items, n.Capacity, nil, func(it item.Item) float64 {
		return n.Metric.Item(it, now)
	})
	if len(plan) == 0 {
		fmt.Printf("nothing to evict; %d tracked, capacity %d\n", len(items), n.Capacity)
		return nil
	}

	names := name.Resolve(paths)
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Order"), bold.Sprint("Document"), bold.Sprint(n.Metric.String()))
	for i, id := range plan {
		for _, it := range items {
			if it.ID != id {
				continue
			}
			tbl.AddRow(fmt.Sprintf("%d", i+1), names[it.Path], fmt.Sprintf("%.4f", n.Metric.Item(it, now)))
		}
	}
	fmt.Println("")
	_, _ = fmt.Fprintln(color.Output, tbl)

	if !n.Apply {
		return nil
	}
	for _, id := range plan {
		if err := n.Persistence.Forget(string(id)); err != nil {
			return fmt.Errorf("forget %s: %w", id, err)
		}
	}
	fmt.Printf("evicted %d documents\n", len(plan))
	return nil
}
