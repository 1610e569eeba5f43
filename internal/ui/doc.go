// Package ui contains the Bubble Tea program that presents a capture as an
// interactive timeline. Model focuses on message orchestration while
// dedicated helpers own input, mouse routing, rendering and backend sync.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. While the filter
//     prompt has focus, key presses go to the prompt first. Everything else is
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function (keys, mouse, resize, backend events, action results).
//   - Mouse input is translated to canvas coordinates (the header row is
//     subtracted) and forwarded to the session, which runs picking and the
//     pick/drag/release protocol on the element tree.
//
// Rendering:
//   - View builds a hover-mode frame through session.BuildFrame and paints
//     the batch, in z order, into a grid of terminal cells. Colours are
//     composited per cell before Lip Gloss styles are applied, so translucent
//     primitives blend with what lies beneath them.
//   - The tooltip of the primitive under the mouse is drawn into the same grid.
//
// State ownership:
//   - The capture snapshot lives in internal/state.CaptureStore and the thread
//     and sample selection in internal/state.SelectionStore. The dispatcher
//     keeps both in sync with backend events and the session is rebuilt from
//     the stored snapshot whenever it changes.
//   - internal/ui/state.List mirrors the track order for keyboard navigation
//     and applies the same fuzzy filter the timeline uses.
//   - Actions that may block (reloading the capture, tracing the
//     accessibility tree) run through the internal/ui/command bus.
package ui
