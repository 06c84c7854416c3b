package item

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHistoryAppendOrder(t *testing.T) {
	now := time.Now()
	var h History
	h.Touch(now.Add(-2 * time.Hour))
	h.Touch(now.Add(-time.Hour))
	h.Edit(now)

	if len(h.Accesses) != 2 || len(h.Edits) != 1 {
		t.Fatalf("history = %+v", h)
	}
	if !h.LastAccess().Equal(now.Add(-time.Hour)) {
		t.Errorf("LastAccess = %v", h.LastAccess())
	}
	if !h.LastEdit().Equal(now) {
		t.Errorf("LastEdit = %v", h.LastEdit())
	}
}

func TestHistoryLastOnEmpty(t *testing.T) {
	var h History
	if !h.LastAccess().IsZero() || !h.LastEdit().IsZero() {
		t.Errorf("empty history last times = %v, %v", h.LastAccess(), h.LastEdit())
	}
}

func TestHistoryPrune(t *testing.T) {
	now := time.Now()
	var h History
	h.Touch(now.Add(-72 * time.Hour))
	h.Touch(now)
	h.Edit(now.Add(-72 * time.Hour))

	h.Prune(now.Add(-24 * time.Hour))
	if len(h.Accesses) != 1 {
		t.Errorf("accesses after prune = %v", h.Accesses)
	}
	if h.Edits != nil {
		t.Errorf("edits after prune = %v, want nil", h.Edits)
	}
}

func TestSnapshotIsLossy(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	var h History
	h.Touch(now.Add(-3 * time.Hour))
	h.Touch(now.Add(-time.Hour))
	h.Edit(now)

	restored := FromSnapshot(h.Snapshot())
	if len(restored.Accesses) != 1 || len(restored.Edits) != 1 {
		t.Fatalf("restored = %+v, want one entry per sequence", restored)
	}
	if !restored.LastAccess().Equal(now.Add(-time.Hour)) {
		t.Errorf("restored access = %v", restored.LastAccess())
	}
}

func TestSnapshotEmpty(t *testing.T) {
	restored := FromSnapshot(History{}.Snapshot())
	if len(restored.Accesses) != 0 || len(restored.Edits) != 0 {
		t.Errorf("restored empty = %+v", restored)
	}
}

func TestHistoryJSONFullForm(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	var h History
	h.Touch(now.Add(-time.Hour))
	h.Touch(now)
	h.Edit(now)

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back History
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Accesses) != 2 || len(back.Edits) != 1 {
		t.Errorf("round trip = %+v", back)
	}
}

func TestHistoryJSONSnapshotForm(t *testing.T) {
	var back History
	if err := json.Unmarshal([]byte(`{"access":1700000000000,"edit":1700000300000}`), &back); err != nil {
		t.Fatalf("unmarshal snapshot form: %v", err)
	}
	if len(back.Accesses) != 1 || len(back.Edits) != 1 {
		t.Fatalf("snapshot form = %+v", back)
	}
	if back.LastAccess().UnixMilli() != 1700000000000 {
		t.Errorf("access = %v", back.LastAccess())
	}
}

func TestRosterReplaceAndOrder(t *testing.T) {
	r := NewRoster(
		Item{ID: "1", Path: "a.go"},
		Item{ID: "2", Path: "b.go"},
	)
	r.Add(Item{ID: "1", Path: "a2.go"}) // replacement keeps position
	r.Add(Item{ID: "3", Path: "c.go"})

	paths := r.Paths()
	want := []string{"a2.go", "b.go", "c.go"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}

	if !r.Remove("2") {
		t.Fatal("remove failed")
	}
	if r.Len() != 2 {
		t.Errorf("len = %d", r.Len())
	}
	if _, ok := r.Get("2"); ok {
		t.Error("removed item still present")
	}
}

func TestRosterSnapshotDoesNotAlias(t *testing.T) {
	r := NewRoster(Item{ID: "1", Path: "a.go"})
	snap := r.Items()
	r.Update("1", func(it *Item) { it.Path = "changed.go" })
	if snap[0].Path != "a.go" {
		t.Error("snapshot aliased roster storage")
	}
}
