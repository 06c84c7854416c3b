// Package app wires the document strip, the picker overlay, and the
// history store into one interactive program.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/docket/pkg/capacity"
	"tableflip.dev/docket/pkg/item"
	"tableflip.dev/docket/pkg/label"
	"tableflip.dev/docket/pkg/name"
	"tableflip.dev/docket/pkg/score"
	"tableflip.dev/docket/pkg/store"
	"tableflip.dev/docket/pkg/tui/components/picker"
	"tableflip.dev/docket/pkg/tui/components/strip"
	"tableflip.dev/docket/pkg/tui/theme"
	"tableflip.dev/docket/pkg/tui/ui/overlay"
)

// Options configures the program.
type Options struct {
	Metric   score.Metric
	Alphabet label.Alphabet
	Capacity int
	MaxRows  int
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model is the root program model.
type Model struct {
	persistence store.Persistence
	roster      *item.Roster
	opts        Options
	theme       theme.Theme

	currentID item.ID
	width     int
	height    int
	status    string

	strip      *strip.Model
	picker     *picker.Model
	pickerOpen bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the root model over an already loaded roster. The first
// roster entry starts as the current document.
func New(persistence store.Persistence, roster *item.Roster, opts Options) *Model {
	if len(opts.Alphabet) == 0 {
		opts.Alphabet = label.DefaultAlphabet()
	}
	m := &Model{
		persistence: persistence,
		roster:      roster,
		opts:        opts,
		theme:       theme.Default(),
		strip:       strip.NewModel(nil),
		picker:      picker.NewModel(nil, opts.MaxRows),
	}
	if items := roster.Items(); len(items) > 0 {
		m.currentID = items[0].ID
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startWatch()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil

	case picker.SelectedMsg:
		m.pickerOpen = false
		return m, m.selectDocument(msg.ID)

	case picker.CancelMsg:
		m.pickerOpen = false
		m.status = ""
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("watch unavailable: %v", msg.err)
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()

	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		return m, m.waitForWatch()

	case watchStoppedMsg:
		m.watchCh = nil
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		return m, tea.Quit
	}

	if m.pickerOpen {
		_, cmd := m.picker.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		m.stopWatch()
		return m, tea.Quit
	case "tab", "space":
		m.pickerOpen = true
		m.refresh()
		return m, nil
	case "]", "right":
		m.strip.PageForward()
	case "[", "left":
		m.strip.PageBack()
	case "e":
		// Demo toggle so the marker states are visible without an
		// embedding editor driving them.
		m.roster.Update(m.currentID, func(it *item.Item) {
			it.Modified = !it.Modified
		})
		m.refresh()
	case "=":
		m.roster.Update(m.currentID, func(it *item.Item) {
			it.Locked = !it.Locked
		})
		m.refresh()
	}
	return m, nil
}

// selectDocument makes id current, records the access, and enforces the
// roster capacity.
func (m *Model) selectDocument(id item.ID) tea.Cmd {
	it, ok := m.roster.Get(id)
	if !ok {
		m.status = fmt.Sprintf("unknown document %s", id)
		return nil
	}

	now := time.Now()
	m.roster.Update(id, func(doc *item.Item) {
		doc.History.Touch(now)
		doc.Visible = true
	})
	if m.currentID != "" && m.currentID != id {
		m.roster.Update(m.currentID, func(doc *item.Item) {
			doc.Visible = false
		})
	}
	m.currentID = id

	if err := m.persistence.Record(it.Path, store.Access, now); err != nil {
		m.status = fmt.Sprintf("record: %v", err)
	} else {
		m.status = ""
	}

	m.enforceCapacity(now)
	m.refresh()
	return nil
}

// enforceCapacity trims the roster down to the configured bound. The
// current, visible, and locked documents are never evicted; only the
// in-memory roster shrinks, recorded history stays on disk.
func (m *Model) enforceCapacity(now time.Time) {
	if m.opts.Capacity <= 0 {
		return
	}
	plan := capacity.Plan(
		m.roster.Items(),
		m.opts.Capacity,
		capacity.Protect(m.currentID, true, true),
		func(it item.Item) float64 { return m.opts.Metric.Item(it, now) },
	)
	for _, id := range plan {
		m.roster.Remove(id)
	}
}

// refresh recomputes names, labels, and both component row sets from
// the roster.
func (m *Model) refresh() {
	items := m.roster.Items()
	paths := m.roster.Paths()
	names := name.Resolve(paths)

	var opts []label.Option
	for i, it := range items {
		if it.ID != m.currentID {
			continue
		}
		if r, ok := name.FirstAlnum(it.Path); ok {
			opts = append(opts, label.WithReservation(i+1, strings.ToLower(string(r))))
		}
		break
	}
	asn := label.Assign(paths, m.opts.Alphabet, opts...)

	docs := make([]strip.Doc, 0, len(items))
	rows := make([]picker.Row, 0, len(items))
	for i, it := range items {
		docs = append(docs, strip.Doc{
			Name:     names[it.Path],
			Label:    asn.Labels[i+1],
			Current:  it.ID == m.currentID,
			Modified: it.Modified,
			Locked:   it.Locked,
			Visible:  it.Visible,
		})
		rows = append(rows, picker.Row{
			ID:       it.ID,
			Name:     names[it.Path],
			Label:    asn.Labels[i+1],
			Current:  it.ID == m.currentID,
			Modified: it.Modified,
			Locked:   it.Locked,
			Visible:  it.Visible,
		})
	}
	m.strip.SetDocs(docs)
	m.picker.SetRows(rows)
	m.focusCurrent()
}

// focusCurrent pages the strip so the current document is visible.
func (m *Model) focusCurrent() {
	for i, it := range m.roster.Items() {
		if it.ID == m.currentID {
			m.strip.ScrollTo(i + 1)
			return
		}
	}
}

func (m *Model) applySizes() {
	m.strip.SetSize(m.width, 1)

	pickerWidth := m.width * 2 / 3
	if pickerWidth < 20 {
		pickerWidth = m.width
	}
	pickerHeight := m.height - 2
	if pickerHeight < 5 {
		pickerHeight = m.height
	}
	m.picker.SetSize(pickerWidth, pickerHeight)
}

// View renders the strip, a stand-in editor body, and the status line,
// with the picker composed over the top while open.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	sections := make([]string, 0, 3)
	sections = append(sections, m.strip.View())
	sections = append(sections, m.renderBody(bodyHeight))
	sections = append(sections, m.renderStatus())
	bg := strings.Join(sections, "\n")

	if !m.pickerOpen {
		return bg
	}
	return overlay.Compose(bg, m.width, m.height, m.picker.View(), overlay.Placement{})
}

func (m *Model) renderBody(height int) string {
	lines := make([]string, height)
	if it, ok := m.roster.Get(m.currentID); ok {
		lines[0] = m.theme.Editor.Body.Render(it.Path)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	if m.status != "" {
		return m.theme.Editor.Status.Render(m.status)
	}
	hint := "tab: pick  [/]: page  e: modified  =: lock  q: quit"
	return m.theme.Editor.Status.Render(hint)
}

func (m *Model) startWatch() tea.Cmd {
	if m.persistence == nil {
		return nil
	}
	p := m.persistence
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent folds store changes back into the roster so another
// process recording activity updates scores live.
func (m *Model) handleWatchEvent(ev store.Event) {
	switch ev.Type {
	case store.EventHistoryChanged:
		for _, it := range m.roster.Items() {
			if it.Path != ev.Path {
				continue
			}
			if h, ok := m.persistence.History(it.Path); ok {
				m.roster.Update(it.ID, func(doc *item.Item) {
					doc.History = h
				})
			}
		}
	default:
		for _, it := range m.roster.Items() {
			if h, ok := m.persistence.History(it.Path); ok {
				m.roster.Update(it.ID, func(doc *item.Item) {
					doc.History = h
				})
			}
		}
	}
	m.refresh()
}

// Run launches the interactive program.
func Run(persistence store.Persistence, roster *item.Roster, opts Options) error {
	p := tea.NewProgram(New(persistence, roster, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
