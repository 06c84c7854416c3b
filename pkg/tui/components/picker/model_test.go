package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/docket/pkg/item"
)

func press(s string) tea.Msg {
	switch s {
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	}
	r := []rune(s)
	return tea.KeyPressMsg{Text: s, Code: r[0]}
}

func msgFrom(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func rows() []Row {
	return []Row{
		{ID: "one", Name: "main.go", Label: "m"},
		{ID: "two", Name: "util.go", Label: "u"},
		{ID: "three", Name: "notes.md", Label: "n"},
	}
}

func TestLabelSelectsDocument(t *testing.T) {
	m := NewModel(rows(), 0)
	m.SetSize(40, 12)

	_, cmd := m.Update(press("u"))
	msg := msgFrom(t, cmd)
	sel, ok := msg.(SelectedMsg)
	if !ok {
		t.Fatalf("got %T, want SelectedMsg", msg)
	}
	if sel.ID != item.ID("two") {
		t.Fatalf("selected %q, want two", sel.ID)
	}
}

func TestUnknownKeyClearsPending(t *testing.T) {
	m := NewModel(rows(), 0)
	m.SetSize(40, 12)

	if _, cmd := m.Update(press("x")); cmd != nil {
		t.Fatal("unexpected command for unknown key")
	}
	if m.Pending() != "" {
		t.Fatalf("pending = %q, want empty", m.Pending())
	}
}

func TestTwoKeyLabel(t *testing.T) {
	set := []Row{
		{ID: "one", Name: "main.go", Label: "a"},
		{ID: "two", Name: "util.go", Label: "ab"},
	}
	m := NewModel(set, 0)
	m.SetSize(40, 12)

	// "a" is exact but also a prefix of "ab", so it buffers.
	_, cmd := m.Update(press("a"))
	if msg := msgFrom(t, cmd); msg != nil {
		t.Fatalf("premature selection: %v", msg)
	}
	if m.Pending() != "a" {
		t.Fatalf("pending = %q, want a", m.Pending())
	}

	_, cmd = m.Update(press("b"))
	sel, ok := msgFrom(t, cmd).(SelectedMsg)
	if !ok || sel.ID != item.ID("two") {
		t.Fatalf("got %v, want SelectedMsg for two", sel)
	}
	if m.Pending() != "" {
		t.Fatalf("pending not cleared: %q", m.Pending())
	}
}

func TestMismatchRestartsBuffer(t *testing.T) {
	set := []Row{
		{ID: "one", Name: "main.go", Label: "aa"},
		{ID: "two", Name: "util.go", Label: "b"},
	}
	m := NewModel(set, 0)
	m.SetSize(40, 12)

	m.Update(press("a"))
	// "ab" matches nothing, but "b" restarts and selects.
	_, cmd := m.Update(press("b"))
	sel, ok := msgFrom(t, cmd).(SelectedMsg)
	if !ok || sel.ID != item.ID("two") {
		t.Fatalf("got %v, want SelectedMsg for two", sel)
	}
}

func TestEscapeBehavior(t *testing.T) {
	set := []Row{
		{ID: "one", Name: "main.go", Label: "aa"},
	}
	m := NewModel(set, 0)
	m.SetSize(40, 12)

	m.Update(press("a"))
	if m.Pending() != "a" {
		t.Fatalf("pending = %q, want a", m.Pending())
	}

	// First escape clears the buffer, the second dismisses.
	_, cmd := m.Update(press("esc"))
	if cmd != nil {
		t.Fatal("escape with pending input should not dismiss")
	}
	if m.Pending() != "" {
		t.Fatal("pending survived escape")
	}

	_, cmd = m.Update(press("esc"))
	if _, ok := msgFrom(t, cmd).(CancelMsg); !ok {
		t.Fatal("second escape should cancel")
	}
}

func TestCursorSelection(t *testing.T) {
	m := NewModel(rows(), 0)
	m.SetSize(40, 12)

	m.Update(press("down"))
	_, cmd := m.Update(press("enter"))
	sel, ok := msgFrom(t, cmd).(SelectedMsg)
	if !ok || sel.ID != item.ID("two") {
		t.Fatalf("got %v, want SelectedMsg for two", sel)
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	m := NewModel(rows(), 0)
	m.SetSize(40, 12)

	m.Update(press("/"))
	if !m.Filtering() {
		t.Fatal("slash should start filtering")
	}
	m.Update(press("u"))
	m.Update(press("t"))
	if got := len(m.filtered); got != 1 {
		t.Fatalf("filtered %d rows, want 1", got)
	}
	if m.filtered[0].ID != item.ID("two") {
		t.Fatalf("filtered to %q, want two", m.filtered[0].ID)
	}

	// Enter keeps the narrowed list and returns to label entry.
	m.Update(press("enter"))
	if m.Filtering() {
		t.Fatal("enter should leave filter entry")
	}
	_, cmd := m.Update(press("u"))
	if _, ok := msgFrom(t, cmd).(SelectedMsg); !ok {
		t.Fatal("label entry should work after filtering")
	}
}

func TestFilterEscapeRestoresRows(t *testing.T) {
	m := NewModel(rows(), 0)
	m.SetSize(40, 12)

	m.Update(press("/"))
	m.Update(press("u"))
	m.Update(press("esc"))
	if m.Filtering() {
		t.Fatal("escape should leave filter entry")
	}
	if got := len(m.filtered); got != 3 {
		t.Fatalf("filtered %d rows after escape, want 3", got)
	}
}

func TestPagination(t *testing.T) {
	set := make([]Row, 10)
	for i := range set {
		set[i] = Row{ID: item.ID(rune('a' + i)), Name: "doc"}
	}
	m := NewModel(set, 0)
	m.SetSize(40, 9) // four chrome rows leave five per page

	s := m.Slice()
	if s.Start != 1 || s.End != 5 || !s.MoreAfter {
		t.Fatalf("page 1 = %+v, want 1..5 with more after", s)
	}

	m.Update(press("pgdown"))
	s = m.Slice()
	if s.Start != 6 || s.End != 10 || !s.MoreBefore || s.MoreAfter {
		t.Fatalf("page 2 = %+v, want 6..10 with more before", s)
	}

	// Replacing the rows resets to the first page.
	m.SetRows(set[:7])
	if got := m.Slice(); got.Start != 1 {
		t.Fatalf("page after SetRows starts at %d, want 1", got.Start)
	}
}

func TestConfiguredMaxRows(t *testing.T) {
	set := make([]Row, 6)
	for i := range set {
		set[i] = Row{ID: item.ID(rune('a' + i)), Name: "doc"}
	}
	m := NewModel(set, 2)
	m.SetSize(40, 20)

	if s := m.Slice(); s.Len() != 2 {
		t.Fatalf("slice len = %d, want configured max 2", s.Len())
	}
}
