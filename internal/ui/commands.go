package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/timegraph/internal/backend"
	"github.com/atomicstack/timegraph/internal/logging"
	"github.com/atomicstack/timegraph/internal/logging/events"
	"github.com/atomicstack/timegraph/internal/ui/command"
)

const reloadTimeout = 5 * time.Second

// actionResultMsg reports the outcome of a bus action.
type actionResultMsg struct {
	info string
	err  error
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		events.Action.Error(result.err)
		return nil
	}
	m.errMsg = ""
	m.setInfo(result.info)
	events.Action.Success(result.info)
	return nil
}

// reloadCmd asks the provider for a fresh snapshot outside the watcher's
// schedule.
func (m *Model) reloadCmd() tea.Cmd {
	provider := m.provider
	return m.bus.Execute(command.Request{
		ID:    "capture:reload",
		Label: "Reload capture",
		Handler: func() tea.Msg {
			if provider == nil {
				return actionResultMsg{err: fmt.Errorf("reload: no capture source")}
			}
			ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
			defer cancel()
			c, err := provider.Snapshot(ctx)
			if err != nil {
				logging.Error(fmt.Errorf("reload capture: %w", err))
			}
			return captureLoadedMsg{event: backend.Event{Kind: backend.KindCapture, Data: c, Err: err}}
		},
	})
}

// accessibilityCmd writes the accessibility tree of the last frame to the
// trace log. The snapshot is taken here, on the UI goroutine, since the
// element tree is not safe to walk concurrently.
func (m *Model) accessibilityCmd() tea.Cmd {
	tree := m.session.Accessible()
	return m.bus.Execute(command.Request{
		ID:    "a11y:dump",
		Label: "Dump accessibility tree",
		Handler: func() tea.Msg {
			n := tree.Count()
			events.UI.Accessibility(n, tree.Outline())
			return actionResultMsg{info: fmt.Sprintf("accessibility tree: %d nodes traced", n)}
		},
	})
}
