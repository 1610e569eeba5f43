package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/timegraph/internal/logging/events"
	"github.com/atomicstack/timegraph/internal/theme"
	"github.com/atomicstack/timegraph/internal/view"
)

const keyHints = "h/l pan  +/- zoom  0 fit  j/k scroll  ↑/↓ track  / filter  r reload  a a11y  q quit"

// View implements tea.Model. It builds a hover-mode frame for the current
// view state and paints it.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader())
	lines = append(lines, m.renderCanvas()...)
	lines = append(lines, m.renderFooter())
	return strings.Join(lines, "\n")
}

func (m *Model) renderCanvas() []string {
	height := m.canvasHeight()
	if height <= 0 {
		return nil
	}
	palette := theme.Colors()
	g := newGrid(m.width, height, palette.Background)
	if m.captures.Current() == nil {
		g.text(1, 0, "waiting for capture…", palette.Empty)
		return g.render()
	}
	m.session.BuildFrame(view.PickingHover)
	g.paint(m.session.Batcher().Sorted())
	if len(m.session.Tracks().Visible()) == 0 {
		msg := "(no tracks)"
		if q := m.session.Tracks().Filter(); q != "" {
			msg = fmt.Sprintf("No tracks match %q", q)
		}
		g.text(1, 0, msg, palette.Empty)
	}
	if m.hovered && !m.session.Dragging() {
		m.overlayTooltip(g)
	}
	return g.render()
}

// overlayTooltip draws the description of whatever is under the mouse next to
// the pointer, flipped to stay on screen.
func (m *Model) overlayTooltip(g *grid) {
	text := m.session.Tooltip(float64(m.mouseX), float64(m.mouseY))
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")
	maxWidth := max(g.width/2, 20)
	w := 0
	for i, line := range lines {
		if ansi.StringWidth(line) > maxWidth {
			line = truncate.StringWithTail(line, uint(maxWidth), "…")
			lines[i] = line
		}
		w = max(w, ansi.StringWidth(line))
	}
	w += 2
	h := min(len(lines), g.height)
	x, y := m.mouseX+2, m.mouseY+1
	if x+w > g.width {
		x = max(m.mouseX-w-1, 0)
	}
	if y+h > g.height {
		y = max(g.height-h, 0)
	}
	palette := theme.Colors()
	g.box(x, y, w, h, lines, palette.TooltipText, palette.Tooltip)
	events.UI.Tooltip(m.mouseX, m.mouseY, len(lines))
}

// renderHeader summarises the capture and the visible window.
func (m *Model) renderHeader() string {
	data := m.captures.Current()
	if data == nil {
		return fill(styles.Header, render(styles.Header, " timegraph"), m.width)
	}
	title := fmt.Sprintf(" %s [%d]", data.ProcessName(), data.ProcessID())
	w := m.session.Graph().Transform().Window()
	captureMin, _ := data.Range()
	parts := []string{
		fmt.Sprintf("v%d", data.Version()),
		fmt.Sprintf("%s … %s", offset(uint64(w.Min-captureMin)), offset(uint64(w.Max-captureMin))),
		fmt.Sprintf("span %s", offset(uint64(w.Max-w.Min))),
		fmt.Sprintf("%d tracks", len(m.list.Items)),
	}
	if q := m.session.Tracks().Filter(); q != "" {
		parts = append(parts, fmt.Sprintf("filter %q", q))
	}
	dim := " · " + strings.Join(parts, " · ")
	head := render(styles.Header, title) + render(styles.HeaderDim, dim)
	return fill(styles.HeaderDim, head, m.width)
}

func (m *Model) renderFooter() string {
	if m.mode == ModeFilter {
		return truncate.String(m.filter.View(), uint(m.width))
	}
	var text string
	var style *lipgloss.Style
	switch {
	case m.errMsg != "":
		text, style = m.errMsg, styles.Error
	case m.backendLastErr != "":
		text, style = "capture: "+m.backendLastErr, styles.Warning
	case m.currentInfo() != "":
		text, style = m.currentInfo(), styles.Info
	default:
		text, style = keyHints, styles.Footer
	}
	return render(style, truncate.StringWithTail(text, uint(m.width), "…"))
}

// offset formats a tick delta as a duration.
func offset(ticks uint64) string {
	if ticks == 0 {
		return "0 s"
	}
	return humanize.SIWithDigits(float64(ticks)*1e-9, 2, "s")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// fill pads an already styled line to width with the given style.
func fill(style *lipgloss.Style, text string, width int) string {
	w := ansi.StringWidth(text)
	if w > width {
		return ansi.Truncate(text, width, "…")
	}
	if style == nil {
		return text + strings.Repeat(" ", width-w)
	}
	return text + style.Render(strings.Repeat(" ", width-w))
}
