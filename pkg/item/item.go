package item

// ID is an opaque handle assigned by the integration layer. The engine
// compares IDs for equality and nothing else.
type ID string

// Item is a snapshot of one open document. The engine only ever reads
// snapshots; all mutation happens in the owning layer between calls.
type Item struct {
	ID       ID
	Path     string
	Visible  bool
	Modified bool
	Locked   bool
	History  History
}
