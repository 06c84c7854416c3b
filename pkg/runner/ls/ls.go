// Package ls lists tracked documents the way the picker would present
// them: labeled, disambiguated, and ordered by the selected metric.
package ls

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/docket/pkg/item"
	"tableflip.dev/docket/pkg/label"
	"tableflip.dev/docket/pkg/name"
	"tableflip.dev/docket/pkg/score"
	"tableflip.dev/docket/pkg/store"
	"tableflip.dev/docket/pkg/timeutil"
)

// Ls renders the tracked-document table.
type Ls struct {
	Persistence store.Persistence
	Metric      score.Metric
	Alphabet    label.Alphabet
	ShowScore   bool
}

// Do prints one row per tracked document, ordered best-first by the
// metric, with the keyboard label each would get in the picker.
func (n *Ls) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	alphabet := n.Alphabet
	if len(alphabet) == 0 {
		alphabet = label.DefaultAlphabet()
	}

	histories := n.Persistence.All(ctx)
	items := make([]item.Item, 0, len(histories))
	for path, h := range histories {
		items = append(items, item.Item{ID: item.ID(path), Path: path, History: h})
	}

	now := time.Now()
	sort.SliceStable(items, func(i, j int) bool {
		si := n.Metric.Item(items[i], now)
		sj := n.Metric.Item(items[j], now)
		if si == sj {
			return items[i].Path < items[j].Path
		}
		return si > sj
	})

	paths := make([]string, len(items))
	for i, it := range items {
		paths[i] = it.Path
	}
	labels := label.Assign(paths, alphabet)
	names := name.Resolve(paths)

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if n.ShowScore {
		tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Document"), bold.Sprint("Last"), bold.Sprint(n.Metric.String()))
	} else {
		tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Document"), bold.Sprint("Last"))
	}
	for i, it := range items {
		key := labels.Labels[i+1]
		last := it.History.LastAccess()
		if edited := it.History.LastEdit(); edited.After(last) {
			last = edited
		}
		if n.ShowScore {
			tbl.AddRow(key, names[it.Path], timeutil.Ago(last, now), fmt.Sprintf("%.4f", n.Metric.Item(it, now)))
		} else {
			tbl.AddRow(key, names[it.Path], timeutil.Ago(last, now))
		}
	}

	fmt.Println("")
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
