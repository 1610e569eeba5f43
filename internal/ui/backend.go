package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/timegraph/internal/backend"
	uistate "github.com/atomicstack/timegraph/internal/ui/state"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// captureLoadedMsg carries a snapshot fetched on demand rather than by the
// watcher, so it must not re-arm the watcher wait.
type captureLoadedMsg struct {
	event backend.Event
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) handleCaptureLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(captureLoadedMsg)
	if !ok {
		return nil
	}
	if m.applyBackendEvent(loaded.event) {
		m.setInfo("capture reloaded")
	} else if loaded.event.Err == nil {
		m.setInfo("capture unchanged")
	}
	return nil
}

// applyBackendEvent stores the snapshot and rebuilds the session from it. It
// reports whether the tracks were rebuilt.
func (m *Model) applyBackendEvent(evt backend.Event) bool {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		return false
	}
	m.backendLastErr = ""
	if !res.CaptureUpdated {
		return false
	}
	m.session.OnDataChanged(m.captures.Current())
	m.syncTrackList()
	return true
}

// syncTrackList mirrors the session's track order into the keyboard list.
// Tracks without data are left out since the timeline never shows them.
func (m *Model) syncTrackList() {
	tracks := m.session.Tracks()
	order := tracks.Order()
	items := make([]uistate.Item, 0, len(order))
	for _, tid := range order {
		t, ok := tracks.Track(tid)
		if !ok || t.IsEmpty() {
			continue
		}
		items = append(items, uistate.Item{Thread: tid, Label: t.Label(1 << 16)})
	}
	m.list.UpdateItems(items)
}
