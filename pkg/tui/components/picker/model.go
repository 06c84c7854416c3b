// Package picker renders the floating document panel: a vertical list
// with keyboard labels, paged to the available height. Typing a label
// selects its document; "/" narrows the list by name.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/docket/pkg/glyph"
	"tableflip.dev/docket/pkg/item"
	"tableflip.dev/docket/pkg/tui/theme"
	"tableflip.dev/docket/pkg/viewport"
)

// Row is one selectable entry. Label may be empty when the alphabet ran
// out; such rows are still reachable with the cursor.
type Row struct {
	ID       item.ID
	Name     string
	Label    string
	Current  bool
	Modified bool
	Locked   bool
	Visible  bool
}

// SelectedMsg reports the document the user picked.
type SelectedMsg struct {
	ID item.ID
}

// CancelMsg reports that the panel was dismissed without a pick.
type CancelMsg struct{}

// Model drives the panel. Pages, cursor, and the pending label buffer
// all reset when the row set changes.
type Model struct {
	theme   theme.PickerTheme
	width   int
	height  int
	maxRows int

	rows     []Row
	filtered []Row

	page    int
	cursor  int
	pending string

	filter    textinput.Model
	filtering bool
}

// NewModel builds a panel over the given rows. maxRows caps the rows
// per page; zero means height is the only bound.
func NewModel(rows []Row, maxRows int) *Model {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"

	m := &Model{
		theme:   theme.Default().Picker,
		maxRows: maxRows,
		page:    1,
		filter:  filter,
	}
	m.SetRows(rows)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize configures the panel's outer dimensions.
func (m *Model) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height
	m.filter.SetWidth(width - 2)
}

// SetRows replaces the row set and resets paging, cursor, filter, and
// the pending label buffer.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	m.page = 1
	m.cursor = 0
	m.pending = ""
	m.filtering = false
	m.filter.Reset()
	m.filter.Blur()
	m.applyFilter()
}

// Pending exposes the partial label typed so far.
func (m *Model) Pending() string { return m.pending }

// Filtering reports whether the filter prompt is active.
func (m *Model) Filtering() bool { return m.filtering }

// Update handles key input for the open panel.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		return m.updateFiltering(key)
	}

	switch key.String() {
	case "esc":
		if m.pending != "" {
			m.pending = ""
			return m, nil
		}
		if m.filter.Value() != "" {
			m.filter.Reset()
			m.applyFilter()
			return m, nil
		}
		return m, cancelCmd
	case "enter":
		return m, m.selectCursor()
	case "/":
		m.filtering = true
		m.pending = ""
		return m, m.filter.Focus()
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	case "pgup", "left":
		m.setPage(m.page - 1)
		return m, nil
	case "pgdown", "right":
		m.setPage(m.page + 1)
		return m, nil
	}

	return m, m.typeLabel(key.String())
}

func (m *Model) updateFiltering(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.filtering = false
		m.filter.Reset()
		m.filter.Blur()
		m.applyFilter()
		return m, nil
	case "enter":
		// Keep the narrowed list, hand keys back to label entry.
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	prev := m.filter.Value()
	m.filter, cmd = m.filter.Update(key)
	if m.filter.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

// typeLabel feeds one key into the pending label buffer. An exact match
// that no other label extends selects immediately; a prefix waits for
// the next key; anything else restarts the buffer with the new key.
func (m *Model) typeLabel(key string) tea.Cmd {
	if len(key) != 1 {
		return nil
	}

	cand := m.pending + key
	if cmd, done := m.matchLabel(cand); done {
		return cmd
	}
	if cmd, done := m.matchLabel(key); done {
		return cmd
	}
	m.pending = ""
	return nil
}

func (m *Model) matchLabel(cand string) (tea.Cmd, bool) {
	var exact *Row
	extended := false
	for i := range m.filtered {
		label := m.filtered[i].Label
		if label == "" {
			continue
		}
		if label == cand {
			exact = &m.filtered[i]
		} else if strings.HasPrefix(label, cand) {
			extended = true
		}
	}
	if exact != nil && !extended {
		m.pending = ""
		return selectCmd(exact.ID), true
	}
	if exact != nil || extended {
		m.pending = cand
		return nil, true
	}
	return nil, false
}

func (m *Model) selectCursor() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return selectCmd(m.filtered[m.cursor].ID)
}

func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	// Keep the cursor's page visible.
	m.page = m.cursor/m.layout().PerPage + 1
}

func (m *Model) setPage(page int) {
	r := m.layout()
	if page < 1 {
		page = 1
	}
	if r.TotalPages > 0 && page > r.TotalPages {
		page = r.TotalPages
	}
	m.page = page
	s := r.Page(m.page, len(m.filtered))
	if s.Empty() {
		return
	}
	if m.cursor < s.Start-1 {
		m.cursor = s.Start - 1
	}
	if m.cursor > s.End-1 {
		m.cursor = s.End - 1
	}
}

func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		m.filtered = m.rows
	} else {
		m.filtered = make([]Row, 0, len(m.rows))
		for _, r := range m.rows {
			if strings.Contains(strings.ToLower(r.Name), needle) {
				m.filtered = append(m.filtered, r)
			}
		}
	}
	m.page = 1
	m.cursor = 0
	m.pending = ""
}

func (m *Model) layout() viewport.Rows {
	// Frame border, title, and footer eat four rows; the filter prompt
	// takes one more while active.
	avail := m.height - 4
	if m.filtering || m.filter.Value() != "" {
		avail--
	}
	return viewport.FitRows(len(m.filtered), m.maxRows, avail)
}

// Slice reports the rows visible on the current page.
func (m *Model) Slice() viewport.Slice {
	return m.layout().Page(m.page, len(m.filtered))
}

// View renders the framed panel.
func (m *Model) View() string {
	r := m.layout()
	s := r.Page(m.page, len(m.filtered))

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Documents"))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if s.Empty() {
		b.WriteString(m.theme.NoLabel.Render("no documents"))
	}
	for i := s.Start; i <= s.End; i++ {
		row := m.filtered[i-1]
		b.WriteString(m.renderRow(row, i-1 == m.cursor))
		if i < s.End {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render(m.footer(r, s)))
	return m.theme.Frame.Render(b.String())
}

func (m *Model) renderRow(row Row, hot bool) string {
	label := "  "
	switch {
	case row.Label != "":
		rendered := row.Label
		if m.pending != "" && strings.HasPrefix(row.Label, m.pending) {
			rendered = glyph.Underline(row.Label)
		}
		label = m.theme.Label.Render(rendered)
		if len(row.Label) == 1 {
			label += " "
		}
	default:
		label = m.theme.NoLabel.Render("··")
	}

	name := m.theme.Name.Render(row.Name)
	if row.Current || hot {
		name = m.theme.Current.Render(row.Name)
	}

	line := label + " " + name
	if marker := glyph.ForState(row.Modified, row.Locked, row.Visible); marker != glyph.Plain {
		line += " " + marker.String()
	}
	return line
}

func (m *Model) footer(r viewport.Rows, s viewport.Slice) string {
	parts := []string{fmt.Sprintf("%d documents", len(m.filtered))}
	if r.Paginated {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.page, r.TotalPages))
	}
	if m.pending != "" {
		parts = append(parts, "key: "+m.pending)
	}
	if s.MoreBefore {
		parts = append(parts, glyph.MoreBefore.String())
	}
	if s.MoreAfter {
		parts = append(parts, glyph.MoreAfter.String())
	}
	return strings.Join(parts, "  ")
}

func selectCmd(id item.ID) tea.Cmd {
	return func() tea.Msg { return SelectedMsg{ID: id} }
}

func cancelCmd() tea.Msg { return CancelMsg{} }
