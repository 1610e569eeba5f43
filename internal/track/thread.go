package track

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/view"
)

// timer boxes of even depth are drawn slightly translucent so nested calls
// stand apart
const evenDepthAlpha = 210

// ThreadTrack is the top-level lane of one thread. It stacks its state,
// sample and tracepoint bars and draws instrumented calls below them, one
// row per call depth.
type ThreadTrack struct {
	Track

	name     string
	external bool

	state      *ThreadStateTrack
	events     *EventTrack
	tracepoint *TracepointTrack

	timerTop float64
}

// NewThreadTrack builds the lane of tid and its sub-tracks. Pseudo threads
// get the matching aggregate sub-tracks.
func NewThreadTrack(data *capture.Capture, tid capture.ThreadID, sel Selection) *ThreadTrack {
	t := &ThreadTrack{
		Track:      newTrack(data, capture.SourceKey{Kind: capture.KindTimers, Thread: tid}, sel),
		name:       trackName(data, tid),
		external:   tid == capture.AllThreadsOfAllProcesses,
		state:      NewThreadStateTrack(data, tid, sel),
		events:     NewEventTrack(data, tid, sel),
		tracepoint: NewTracepointTrack(data, tid, sel),
	}
	if tid >= 0 {
		t.events.SetColor(geom.ColorFromName(t.name).WithAlpha(60))
	}
	t.AddChild(t, t.state)
	t.AddChild(t, t.events)
	t.AddChild(t, t.tracepoint)
	t.SetAccessibleFactory(func() a11y.Accessible { return newAccessibleTrack(t) })
	return t
}

var _ view.Element = (*ThreadTrack)(nil)

func trackName(data *capture.Capture, tid capture.ThreadID) string {
	switch tid {
	case capture.AllProcessThreads:
		return fmt.Sprintf("%s (all threads)", data.ProcessName())
	case capture.AllThreadsOfAllProcesses:
		return "All tracepoint events"
	default:
		return data.ThreadName(tid)
	}
}

func (t *ThreadTrack) Name() string { return t.name }

// Label is the tab text: the name followed by the thread id.
func (t *ThreadTrack) Label(width int) string {
	suffix := ""
	if t.Thread() >= 0 {
		suffix = fmt.Sprintf(" [%d]", t.Thread())
	}
	return FitLabel(t.name, suffix, width)
}

func (t *ThreadTrack) StateTrack() *ThreadStateTrack     { return t.state }
func (t *ThreadTrack) EventTrack() *EventTrack           { return t.events }
func (t *ThreadTrack) TracepointTrack() *TracepointTrack { return t.tracepoint }

// IsEmpty holds when no sub-track has data and no call was recorded.
func (t *ThreadTrack) IsEmpty() bool {
	return t.state.IsEmpty() && t.events.IsEmpty() && t.tracepoint.IsEmpty() && !t.HasTimers()
}

func (t *ThreadTrack) HasTimers() bool {
	return !t.data.IsEmpty(t.key)
}

// VisibleChildren returns the sub-tracks that take space.
func (t *ThreadTrack) VisibleChildren() []view.Element {
	var out []view.Element
	for _, c := range t.Children() {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}

// Layout positions the sub-tracks and sizes the track for a canvas of the
// given width. Empty tracks collapse to zero height.
func (t *ThreadTrack) Layout(l timegraph.Layout, width float64) {
	if t.IsEmpty() {
		t.Collapse(width)
		return
	}
	y := 0.0
	placed := 0
	for _, c := range t.Children() {
		n := c.Node()
		if c.IsEmpty() {
			n.SetPos(0, y)
			n.SetSize(width, 0)
			continue
		}
		if placed > 0 {
			y += l.SpaceBetweenSubtracks
		}
		h := subtrackHeight(c, l)
		n.SetPos(0, y)
		n.SetSize(width, h)
		y += h
		placed++
	}
	if depth := t.data.TimerDepth(t.Thread()); depth > 0 {
		if placed > 0 {
			y += l.SpaceBetweenSubtracks
		}
		t.timerTop = y
		y += float64(depth) * l.TextBoxHeight
	} else {
		t.timerTop = y
	}
	t.SetSize(width, y+l.TrackBottomMargin)
}

// Collapse gives the track and its sub-tracks zero height so they neither
// draw nor pick.
func (t *ThreadTrack) Collapse(width float64) {
	for _, c := range t.Children() {
		c.Node().SetSize(width, 0)
	}
	t.SetSize(width, 0)
}

func subtrackHeight(e view.Element, l timegraph.Layout) float64 {
	if _, ok := e.(*ThreadStateTrack); ok {
		return l.ThreadStateTrackHeight
	}
	return l.EventTrackHeight
}

// Draw emits the background, the tab with its label and the chrome of every
// visible sub-track.
func (t *ThreadTrack) Draw(c view.Canvas, mode view.PickingMode, z float64) {
	t.Base.Draw(c, mode, z)
	if t.IsEmpty() {
		return
	}
	b := c.Batcher()
	f := c.Frame()
	r := t.ScreenRect()
	if r.Empty() {
		return
	}
	id := batch.NewID(batch.KindElement, t.ElementID(), 0)

	bg := colorTrackBackground
	if t.external {
		bg = colorExternalBackground
	}
	b.Add(batch.Box(r, batch.ZTrack, bg, id), z, t)

	tabWidth := f.Layout.TrackTabWidth - 1
	if tabWidth >= 1 {
		tab := colorTab
		if sel, ok := t.selection.SelectedThread(); ok && sel == t.Thread() {
			tab = colorTabSelected
		}
		if t.Picked() {
			tab = tab.Lighten(tabPickedLighten)
		}
		// the tab sits above the sub-track bars, so it needs an id of its own
		tabID := batch.NewID(batch.KindElement, t.ElementID(), 1)
		b.Add(batch.Box(geom.RectOf(r.Pos.X, r.Pos.Y, tabWidth, r.Size.Y), batch.ZTrackTab, tab, tabID), z, t)
		label := t.Label(int(tabWidth))
		b.Add(batch.Text(r.Pos, label, batch.ZTrackTabText, colorTabText, batch.NewID(batch.KindText, t.ElementID(), 0)), z, t)
	}

	for _, child := range t.Children() {
		if !child.IsEmpty() {
			child.Draw(c, mode, z)
		}
	}
}

// UpdatePrimitives forwards to the visible sub-tracks and then draws the
// timer rows.
func (t *ThreadTrack) UpdatePrimitives(b *batch.Batch, f view.Frame, mode view.PickingMode, z float64) {
	if !f.Valid() || t.IsEmpty() {
		return
	}
	r := t.ScreenRect()
	if r.Empty() {
		return
	}
	for _, child := range t.Children() {
		if !child.IsEmpty() {
			child.UpdatePrimitives(b, f, mode, z)
		}
	}
	if !t.HasTimers() {
		return
	}
	top := r.Pos.Y + t.timerTop
	rowHeight := f.Layout.TextBoxHeight
	symbols := t.data.Symbols()
	rows := map[uint32]*coalescer{}
	t.data.ForEachRecord(t.key, f.Min, f.Max, func(rec capture.Record) bool {
		c, ok := rows[rec.Depth]
		if !ok {
			c = newCoalescer(f.Transform)
			rows[rec.Depth] = c
		}
		x0, x1, ok := c.span(rec)
		if !ok {
			return true
		}
		if x0, x1, ok = clip(f.Transform, x0, x1); !ok {
			return true
		}
		name := capture.UnknownName
		if fn, found := symbols.Function(capture.FunctionKey(rec.Discriminator)); found {
			name = fn.Name
		}
		color := geom.ColorFromName(name)
		if rec.Depth%2 == 0 {
			color = color.WithAlpha(evenDepthAlpha)
		}
		y := top + float64(rec.Depth)*rowHeight
		id := batch.NewID(batch.KindBox, t.ElementID(), uint32(rec.Index))
		b.Add(batch.Box(geom.RectOf(x0, y, x1-x0, rowHeight), batch.ZBox, color, id), z, t)
		if w := int(x1 - x0); w >= 3 {
			b.Add(batch.Text(geom.Vec2{X: x0, Y: y}, truncate.String(name, uint(w)), batch.ZText, colorBlack, batch.NoID), z, nil)
		}
		return true
	})
}

// OnPick selects the thread.
func (t *ThreadTrack) OnPick(x, y float64) {
	t.Base.OnPick(x, y)
	if t.Thread() >= 0 {
		t.selection.SelectThread(t.Thread())
	}
}

// OnDrag moves the track vertically only.
func (t *ThreadTrack) OnDrag(x, y float64) {
	px := t.Pos().X
	t.Base.OnDrag(x, y)
	t.SetPos(px, t.Pos().Y)
}

// Tooltip describes the track itself or one of its timers.
func (t *ThreadTrack) Tooltip(id batch.ID) string {
	switch id.Kind() {
	case batch.KindElement, batch.KindText:
		return t.trackTooltip()
	case batch.KindBox:
		return t.timerTooltip(int(id.Index()))
	default:
		return ""
	}
}

func (t *ThreadTrack) trackTooltip() string {
	tip := tooltip{title: t.name, kind: "Thread track"}
	if t.Thread() >= 0 {
		tip.row("Thread", "%d", t.Thread())
	}
	tip.row("Process", "%s [%d]", t.data.ProcessName(), t.data.ProcessID())
	count := func(k capture.DataKind) string {
		return humanize.Comma(int64(t.data.Count(capture.SourceKey{Kind: k, Thread: t.Thread()})))
	}
	tip.row("States", "%s", count(capture.KindThreadStates))
	tip.row("Samples", "%s", count(capture.KindCallstacks))
	tip.row("Tracepoints", "%s", count(capture.KindTracepoints))
	tip.row("Calls", "%s", count(capture.KindTimers))
	return tip.String()
}

func (t *ThreadTrack) timerTooltip(index int) string {
	timer, ok := t.data.Timer(index)
	if !ok || timer.Tid != t.Thread() {
		return ""
	}
	fn, ok := t.data.Symbols().Function(timer.Function)
	if !ok {
		fn = capture.Function{Name: capture.UnknownName, Module: capture.UnknownName}
	}
	tip := tooltip{title: fn.Name, kind: "Instrumented call"}
	tip.row("Module", "%s", fn.Module)
	tip.row("Depth", "%d", timer.Depth)
	tip.row("Start", "%s", formatTimestamp(t.data, timer.Start))
	tip.row("Duration", "%s", formatDuration(timer.End-timer.Start))
	return tip.String()
}

// VisibleTimers reports whether a timer intersects [min, max].
func (t *ThreadTrack) VisibleTimers(min, max capture.Tick) bool {
	found := false
	t.data.ForEachRecord(t.key, min, max, func(capture.Record) bool {
		found = true
		return false
	})
	return found
}
