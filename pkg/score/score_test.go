package score

import (
	"math"
	"testing"
	"time"

	"tableflip.dev/docket/pkg/item"
)

func TestScoreEmptyHistory(t *testing.T) {
	now := time.Now()
	if got := Score(nil, Last, now); got != 0 {
		t.Errorf("Last of empty history = %v, want 0", got)
	}
	if got := Score(nil, Decay, now); got != 0 {
		t.Errorf("Decay of empty history = %v, want 0", got)
	}
}

func TestScoreLastPicksMostRecent(t *testing.T) {
	now := time.Now()
	older := now.Add(-2 * time.Hour)
	newer := now.Add(-time.Minute)
	got := Score([]time.Time{newer, older}, Last, now)
	if got != float64(newer.UnixMilli()) {
		t.Errorf("Last = %v, want %v", got, float64(newer.UnixMilli()))
	}
}

func TestScoreDecayCurve(t *testing.T) {
	now := time.Now()
	history := []time.Time{now.Add(-time.Hour), now.Add(-100 * time.Hour)}
	got := Score(history, Decay, now)
	want := 1.0/2.0 + 1.0/101.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Decay = %v, want %v", got, want)
	}
}

func TestScoreDecayMonotonic(t *testing.T) {
	now := time.Now()
	history := []time.Time{now.Add(-5 * time.Hour)}
	base := Score(history, Decay, now)
	grown := Score(append(history, now.Add(-time.Minute)), Decay, now)
	if grown <= base {
		t.Errorf("adding a recent timestamp lowered decay score: %v -> %v", base, grown)
	}
	if base < Score(nil, Decay, now) {
		t.Errorf("non-empty history scored below empty history")
	}
}

func TestScoreDecayFutureTimestampClamped(t *testing.T) {
	now := time.Now()
	got := Score([]time.Time{now.Add(time.Hour)}, Decay, now)
	if got < 0 || got > 1 {
		t.Errorf("future timestamp score = %v, want within (0, 1]", got)
	}
}

func TestMetricItem(t *testing.T) {
	now := time.Now()
	it := item.Item{
		ID:   "a",
		Path: "a.go",
		History: item.History{
			Accesses: []time.Time{now.Add(-time.Hour)},
			Edits:    []time.Time{now.Add(-2 * time.Hour), now.Add(-30 * time.Minute)},
		},
	}
	if got := RecencyEdit.Item(it, now); got != float64(now.Add(-30*time.Minute).UnixMilli()) {
		t.Errorf("RecencyEdit = %v", got)
	}
	if got := FrecencyAccess.Item(it, now); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("FrecencyAccess = %v, want 0.5", got)
	}
	if got := RecencyAccess.Item(item.Item{}, now); got != 0 {
		t.Errorf("empty item RecencyAccess = %v, want 0", got)
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range []Metric{RecencyAccess, RecencyEdit, FrecencyAccess, FrecencyEdit} {
		got, ok := ParseMetric(m.String())
		if !ok || got != m {
			t.Errorf("ParseMetric(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMetric("bogus"); ok {
		t.Errorf("ParseMetric accepted bogus metric")
	}
}
