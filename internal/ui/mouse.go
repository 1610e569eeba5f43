package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/timegraph/internal/logging/events"
)

// handleMouseMsg forwards mouse input to the session in canvas coordinates.
// The wheel scrolls the track list; with ctrl held it zooms around the mouse
// column.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	x, y := float64(ev.X), float64(ev.Y-headerRows)
	m.mouseX, m.mouseY = ev.X, ev.Y-headerRows
	events.UI.Mouse(mouseActionName(ev.Action), mouseButtonName(ev.Button), ev.X, ev.Y)

	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if ev.Ctrl {
			m.session.ZoomIn(x)
		} else {
			m.session.Scroll(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if ev.Ctrl {
			m.session.ZoomOut(x)
		} else {
			m.session.Scroll(1)
		}
		return nil
	}

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || !m.inCanvas(ev.Y) {
			return nil
		}
		m.hovered = false
		m.session.MouseDown(x, y)
	case tea.MouseActionMotion:
		if m.session.Dragging() {
			m.session.MouseMove(x, y)
			return nil
		}
		m.hovered = m.inCanvas(ev.Y)
	case tea.MouseActionRelease:
		if m.session.MouseUp(x, y) {
			m.syncTrackList()
		}
		m.hovered = m.inCanvas(ev.Y)
	}
	return nil
}

func (m *Model) inCanvas(row int) bool {
	r := row - headerRows
	return r >= 0 && r < m.canvasHeight()
}

func mouseActionName(a tea.MouseAction) string {
	switch a {
	case tea.MouseActionPress:
		return "press"
	case tea.MouseActionRelease:
		return "release"
	case tea.MouseActionMotion:
		return "motion"
	default:
		return "unknown"
	}
}

func mouseButtonName(b tea.MouseButton) string {
	switch b {
	case tea.MouseButtonNone:
		return "none"
	case tea.MouseButtonLeft:
		return "left"
	case tea.MouseButtonMiddle:
		return "middle"
	case tea.MouseButtonRight:
		return "right"
	case tea.MouseButtonWheelUp:
		return "wheel-up"
	case tea.MouseButtonWheelDown:
		return "wheel-down"
	default:
		return "other"
	}
}
