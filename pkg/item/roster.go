package item

// Roster is the ordered set of open documents. It is owned by the
// integration layer and passed into engine calls by pointer; the engine
// packages themselves keep no roster state between calls.
type Roster struct {
	items []Item
}

// NewRoster builds a roster from an initial item list, preserving order.
func NewRoster(items ...Item) *Roster {
	r := &Roster{}
	for _, it := range items {
		r.Add(it)
	}
	return r
}

// Len reports the number of tracked documents.
func (r *Roster) Len() int { return len(r.items) }

// Add appends an item, replacing any existing item with the same ID while
// keeping its original position. A path change is modeled as remove+add.
func (r *Roster) Add(it Item) {
	for i := range r.items {
		if r.items[i].ID == it.ID {
			r.items[i] = it
			return
		}
	}
	r.items = append(r.items, it)
}

// Remove drops the item with the given ID. It reports whether anything
// was removed.
func (r *Roster) Remove(id ID) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the item with the given ID.
func (r *Roster) Get(id ID) (Item, bool) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items returns a fresh snapshot slice in insertion order. Callers may
// hold it across their own mutations; it never aliases roster storage.
func (r *Roster) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Paths returns the item paths in insertion order.
func (r *Roster) Paths() []string {
	out := make([]string, len(r.items))
	for i, it := range r.items {
		out[i] = it.Path
	}
	return out
}

// Update applies fn to the stored item with the given ID, if present.
// This is the one sanctioned in-place mutation; it runs between engine
// calls on the owner's thread.
func (r *Roster) Update(id ID, fn func(*Item)) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			fn(&r.items[i])
			return true
		}
	}
	return false
}
