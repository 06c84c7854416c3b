// Package strip renders the roster as a single horizontal line, the
// way a tabline presents open documents. Paging is width-driven: the
// strip shows as many documents as fit and marks truncated edges.
package strip

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/docket/pkg/glyph"
	"tableflip.dev/docket/pkg/tui/theme"
	"tableflip.dev/docket/pkg/viewport"
)

// Doc is one rendered strip entry. Name is the already-disambiguated
// display name; Label is the keyboard label, empty when unassigned.
type Doc struct {
	Name     string
	Label    string
	Current  bool
	Modified bool
	Locked   bool
	Visible  bool
}

// Model owns the strip's paging cursor. The cursor resets whenever the
// document list is replaced.
type Model struct {
	theme theme.StripTheme
	width int
	docs  []Doc
	start int // 1-based index of the first visible document
}

// NewModel builds a strip over the given documents.
func NewModel(docs []Doc) *Model {
	return &Model{
		theme: theme.Default().Strip,
		docs:  docs,
		start: 1,
	}
}

// SetSize updates the frame width; the strip is always one row tall.
func (m *Model) SetSize(width, _ int) {
	if width < 1 {
		width = 1
	}
	m.width = width
}

// SetDocs replaces the document list and resets the paging cursor.
func (m *Model) SetDocs(docs []Doc) {
	m.docs = docs
	m.start = 1
}

// Docs returns the current entries.
func (m *Model) Docs() []Doc { return m.docs }

// Slice reports the currently visible range.
func (m *Model) Slice() viewport.Slice {
	return viewport.ForwardFit(m.widths(), m.constraints(), m.start)
}

// PageForward advances the cursor to the document after the visible
// range, if any.
func (m *Model) PageForward() {
	s := m.Slice()
	if s.Empty() || !s.MoreAfter {
		return
	}
	m.start = s.End + 1
}

// PageBack moves the cursor to the start of the preceding page.
func (m *Model) PageBack() {
	if m.start <= 1 {
		return
	}
	m.start = viewport.BackwardFit(m.widths(), m.constraints(), m.start)
}

// ScrollTo pages until the 1-based index is inside the visible range.
func (m *Model) ScrollTo(index int) {
	if index < 1 || index > len(m.docs) {
		return
	}
	for guard := 0; guard <= len(m.docs); guard++ {
		s := m.Slice()
		if s.Empty() || (index >= s.Start && index <= s.End) {
			return
		}
		if index < s.Start {
			m.PageBack()
		} else {
			m.PageForward()
		}
	}
}

// View renders the visible page with edge indicators.
func (m *Model) View() string {
	s := m.Slice()
	if s.Empty() {
		return ""
	}

	var b strings.Builder
	if s.MoreBefore {
		b.WriteString(m.theme.Indicator.Render(glyph.MoreBefore.String() + " "))
	}
	for i := s.Start; i <= s.End; i++ {
		if i > s.Start {
			b.WriteString(" ")
		}
		b.WriteString(m.cell(m.docs[i-1], m.cellBudget(s)))
	}
	if s.MoreAfter {
		b.WriteString(" " + m.theme.Indicator.Render(glyph.MoreAfter.String()))
	}
	return b.String()
}

// cellBudget is the width available to a document that has a page to
// itself; anything wider is truncated rather than dropped.
func (m *Model) cellBudget(s viewport.Slice) int {
	if s.Len() > 1 {
		return 0 // multi-document pages fit by construction
	}
	budget := m.width
	c := m.constraints()
	if s.MoreBefore {
		budget -= c.LeftIndicator
	}
	if s.MoreAfter {
		budget -= c.RightIndicator
	}
	if budget < 1 {
		budget = 1
	}
	return budget
}

func (m *Model) cell(d Doc, budget int) string {
	text := m.cellText(d)
	if budget > 0 && runewidth.StringWidth(text) > budget {
		text = truncate.StringWithTail(text, uint(budget), glyph.Truncated.String())
	}

	style := m.theme.Item
	switch {
	case d.Current:
		style = m.theme.Current
	case d.Modified:
		style = m.theme.Modified
	}
	// The label keeps its own emphasis unless the cell is reversed or
	// truncation already ate into it.
	if d.Label == "" || d.Current || !strings.HasPrefix(text, d.Label+" ") {
		return style.Render(text)
	}
	return m.theme.Label.Render(d.Label) + style.Render(text[len(d.Label):])
}

func (m *Model) cellText(d Doc) string {
	marker := glyph.ForState(d.Modified, d.Locked, d.Visible)
	text := d.Name
	if d.Label != "" {
		text = d.Label + " " + text
	}
	if marker != glyph.Plain {
		text += " " + marker.String()
	}
	return text
}

func (m *Model) widths() []int {
	widths := make([]int, len(m.docs))
	for i, d := range m.docs {
		widths[i] = runewidth.StringWidth(m.cellText(d))
	}
	return widths
}

func (m *Model) constraints() viewport.Constraints {
	ind := runewidth.StringWidth(glyph.MoreBefore.String()) + 1
	return viewport.Constraints{
		Frame:          m.width,
		Separator:      1,
		LeftIndicator:  ind,
		RightIndicator: ind,
	}
}
