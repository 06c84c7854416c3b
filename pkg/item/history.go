package item

import (
	"encoding/json"
	"time"
)

// History holds the ordered access and edit timestamps for one document.
// Both sequences are append-only while the document lives; Prune trims
// aged entries so long-running sessions do not grow without bound.
type History struct {
	Accesses []time.Time
	Edits    []time.Time
}

// Touch appends an access timestamp.
func (h *History) Touch(t time.Time) {
	h.Accesses = append(h.Accesses, t)
}

// Edit appends an edit timestamp.
func (h *History) Edit(t time.Time) {
	h.Edits = append(h.Edits, t)
}

// Prune drops timestamps older than cutoff from both sequences.
func (h *History) Prune(cutoff time.Time) {
	h.Accesses = pruneBefore(h.Accesses, cutoff)
	h.Edits = pruneBefore(h.Edits, cutoff)
}

func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	kept := times[:0]
	for _, t := range times {
		if !t.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// LastAccess returns the most recent access, or the zero time.
func (h History) LastAccess() time.Time { return last(h.Accesses) }

// LastEdit returns the most recent edit, or the zero time.
func (h History) LastEdit() time.Time { return last(h.Edits) }

func last(times []time.Time) time.Time {
	if len(times) == 0 {
		return time.Time{}
	}
	return times[len(times)-1]
}

// Snapshot is the lossy, most-recent-only serialized form of a History.
// External stores may persist only this summary; a history restored from
// it has at most one entry per sequence and scores like any other.
type Snapshot struct {
	Access *int64 `json:"access,omitempty"`
	Edit   *int64 `json:"edit,omitempty"`
}

// Snapshot reduces the history to its most recent access and edit.
func (h History) Snapshot() Snapshot {
	var s Snapshot
	if t := h.LastAccess(); !t.IsZero() {
		ms := t.UnixMilli()
		s.Access = &ms
	}
	if t := h.LastEdit(); !t.IsZero() {
		ms := t.UnixMilli()
		s.Edit = &ms
	}
	return s
}

// FromSnapshot rebuilds a (length 0 or 1 per sequence) history.
func FromSnapshot(s Snapshot) History {
	var h History
	if s.Access != nil {
		h.Accesses = []time.Time{time.UnixMilli(*s.Access)}
	}
	if s.Edit != nil {
		h.Edits = []time.Time{time.UnixMilli(*s.Edit)}
	}
	return h
}

// historyJSON is the full persisted form. The lossy Snapshot fields are
// written alongside the full sequences so older readers stay compatible.
type historyJSON struct {
	Access   *int64  `json:"access,omitempty"`
	Edit     *int64  `json:"edit,omitempty"`
	Accesses []int64 `json:"accesses,omitempty"`
	Edits    []int64 `json:"edits,omitempty"`
}

// MarshalJSON writes the full history plus the snapshot summary.
func (h History) MarshalJSON() ([]byte, error) {
	j := historyJSON{
		Access:   h.Snapshot().Access,
		Edit:     h.Snapshot().Edit,
		Accesses: toMillis(h.Accesses),
		Edits:    toMillis(h.Edits),
	}
	return json.Marshal(j)
}

// UnmarshalJSON accepts either the full form or a bare snapshot.
func (h *History) UnmarshalJSON(data []byte) error {
	var j historyJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if len(j.Accesses) > 0 || len(j.Edits) > 0 {
		h.Accesses = fromMillis(j.Accesses)
		h.Edits = fromMillis(j.Edits)
		return nil
	}
	*h = FromSnapshot(Snapshot{Access: j.Access, Edit: j.Edit})
	return nil
}

func toMillis(times []time.Time) []int64 {
	if len(times) == 0 {
		return nil
	}
	ms := make([]int64, len(times))
	for i, t := range times {
		ms[i] = t.UnixMilli()
	}
	return ms
}

func fromMillis(ms []int64) []time.Time {
	if len(ms) == 0 {
		return nil
	}
	times := make([]time.Time, len(ms))
	for i, m := range ms {
		times[i] = time.UnixMilli(m)
	}
	return times
}
