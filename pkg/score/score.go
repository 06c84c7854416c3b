// Package score turns a document's timestamp history into a single
// comparable number. Two modes exist: Last keeps only recency, Decay
// adds a frecency curve that rewards frequent recent activity.
package score

import (
	"time"

	"tableflip.dev/docket/pkg/item"
)

// Mode selects how a timestamp history collapses into a score.
type Mode int

const (
	// Last scores a history by its most recent timestamp, expressed in
	// Unix milliseconds. An empty history scores 0.
	Last Mode = iota

	// Decay scores a history as the sum of 1/(1+ageHours) across every
	// timestamp. More frequent and more recent activity both raise the
	// score; the result is never negative and an empty history scores 0.
	Decay
)

// Score collapses times under the given mode, relative to now.
func Score(times []time.Time, mode Mode, now time.Time) float64 {
	if len(times) == 0 {
		return 0
	}
	switch mode {
	case Decay:
		total := 0.0
		for _, t := range times {
			age := now.Sub(t).Hours()
			if age < 0 {
				age = 0
			}
			total += 1 / (1 + age)
		}
		return total
	default:
		latest := times[0]
		for _, t := range times[1:] {
			if t.After(latest) {
				latest = t
			}
		}
		return float64(latest.UnixMilli())
	}
}

// Metric is one of the four history×mode combinations used to order
// documents and to pick eviction candidates.
type Metric int

const (
	RecencyAccess Metric = iota
	RecencyEdit
	FrecencyAccess
	FrecencyEdit
)

var metricNames = map[string]Metric{
	"recency-access":  RecencyAccess,
	"recency-edit":    RecencyEdit,
	"frecency-access": FrecencyAccess,
	"frecency-edit":   FrecencyEdit,
}

// ParseMetric maps a flag value such as "frecency-access" to its Metric.
func ParseMetric(s string) (Metric, bool) {
	m, ok := metricNames[s]
	return m, ok
}

func (m Metric) String() string {
	switch m {
	case RecencyAccess:
		return "recency-access"
	case RecencyEdit:
		return "recency-edit"
	case FrecencyAccess:
		return "frecency-access"
	case FrecencyEdit:
		return "frecency-edit"
	}
	return "unknown"
}

// Item scores one document snapshot under the metric, relative to now.
func (m Metric) Item(it item.Item, now time.Time) float64 {
	switch m {
	case RecencyAccess:
		return Score(it.History.Accesses, Last, now)
	case RecencyEdit:
		return Score(it.History.Edits, Last, now)
	case FrecencyAccess:
		return Score(it.History.Accesses, Decay, now)
	case FrecencyEdit:
		return Score(it.History.Edits, Decay, now)
	}
	return 0
}
