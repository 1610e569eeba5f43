package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/timegraph/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	events.UI.Key(key)
	layout := m.session.Graph().Layout()
	center := m.plotCenter()
	switch key {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter("")
			events.Filter.Cleared()
			return nil
		}
		if m.hovered {
			m.hovered = false
			return nil
		}
		return tea.Quit
	case "/":
		return m.startFilter()
	case "h", "left":
		m.session.Pan(-layout.PanStep)
	case "l", "right":
		m.session.Pan(layout.PanStep)
	case "H", "shift+left":
		m.session.Pan(-m.session.Graph().PlotWidth() / 2)
	case "L", "shift+right":
		m.session.Pan(m.session.Graph().PlotWidth() / 2)
	case "+", "=":
		m.session.ZoomIn(center)
	case "-", "_":
		m.session.ZoomOut(center)
	case "0":
		m.session.ZoomToFit()
	case "j":
		m.session.Scroll(1)
	case "k":
		m.session.Scroll(-1)
	case "pgdown", "ctrl+d":
		m.session.Scroll(float64(max(m.canvasHeight()-1, 1)))
	case "pgup", "ctrl+u":
		m.session.Scroll(-float64(max(m.canvasHeight()-1, 1)))
	case "up":
		if m.list.MoveCursorUp() {
			m.focusCurrentTrack()
		}
	case "down":
		if m.list.MoveCursorDown() {
			m.focusCurrentTrack()
		}
	case "home":
		if m.list.MoveCursorHome() {
			m.focusCurrentTrack()
		}
	case "end":
		if m.list.MoveCursorEnd() {
			m.focusCurrentTrack()
		}
	case "r":
		return m.reloadCmd()
	case "a":
		return m.accessibilityCmd()
	}
	return nil
}

// plotCenter is the column zoom keys anchor on.
func (m *Model) plotCenter() float64 {
	g := m.session.Graph()
	return g.PlotLeft() + g.PlotWidth()/2
}

// focusCurrentTrack selects the thread under the list cursor and scrolls its
// track into view. The timeline must have been laid out at least once.
func (m *Model) focusCurrentTrack() {
	item, ok := m.list.Current()
	if !ok {
		return
	}
	if item.Thread >= 0 {
		m.selection.SelectThread(item.Thread)
		events.Track.SelectThread(int32(item.Thread))
	}
	m.session.RevealTrack(item.Thread)
}

func (m *Model) startFilter() tea.Cmd {
	m.mode = ModeFilter
	m.hovered = false
	events.Filter.Start()
	return m.filter.Focus()
}

// handleFilterInput routes keys to the filter prompt while it has focus. Enter
// keeps the filter, esc drops it; everything else edits the query.
func (m *Model) handleFilterInput(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "enter":
		m.mode = ModeTimeline
		m.filter.Blur()
		return true, nil
	case "esc":
		m.mode = ModeTimeline
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter("")
		events.Filter.Cleared()
		return true, nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(keyMsg)
	if after := m.filter.Value(); after != before {
		m.applyFilter(after)
	}
	return true, cmd
}

// applyFilter narrows both the timeline and the keyboard list to tracks whose
// label matches query.
func (m *Model) applyFilter(query string) {
	query = strings.TrimSpace(query)
	m.session.SetFilter(query)
	m.list.SetFilter(query)
	m.clearMessages()
	events.Filter.Changed(query, len(m.list.Items))
}
