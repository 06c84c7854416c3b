// Package capacity picks eviction candidates when the roster outgrows
// its configured bound. Selection is one item per call; the caller
// removes it and calls again until the roster fits or nothing is left
// to evict.
package capacity

import (
	"tableflip.dev/docket/pkg/item"
)

// Select returns the eligible item with the minimum score. Eligibility
// is the complement of exclude; ties go to the earliest item in roster
// order. The second result is false when every item is excluded, which
// callers treat as "cannot reduce further", not as an error.
func Select(items []item.Item, exclude func(item.Item) bool, score func(item.Item) float64) (item.ID, bool) {
	found := false
	var bestID item.ID
	var bestScore float64
	for _, it := range items {
		if exclude != nil && exclude(it) {
			continue
		}
		s := score(it)
		if !found || s < bestScore {
			found = true
			bestID = it.ID
			bestScore = s
		}
	}
	return bestID, found
}

// Protect builds the standard exclusion predicate: the current document,
// visible documents, and locked documents, each independently toggleable.
func Protect(currentID item.ID, keepVisible, keepLocked bool) func(item.Item) bool {
	return func(it item.Item) bool {
		if currentID != "" && it.ID == currentID {
			return true
		}
		if keepVisible && it.Visible {
			return true
		}
		if keepLocked && it.Locked {
			return true
		}
		return false
	}
}

// Plan simulates repeated selection down to the capacity bound and
// returns the eviction order without mutating items. Short when the
// roster already fits or exclusions stall progress.
func Plan(items []item.Item, capacity int, exclude func(item.Item) bool, score func(item.Item) float64) []item.ID {
	if capacity < 0 {
		capacity = 0
	}
	remaining := make([]item.Item, len(items))
	copy(remaining, items)

	var evicted []item.ID
	for len(remaining) > capacity {
		id, ok := Select(remaining, exclude, score)
		if !ok {
			break
		}
		evicted = append(evicted, id)
		for i := range remaining {
			if remaining[i].ID == id {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return evicted
}
