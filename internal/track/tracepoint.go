package track

import (
	"fmt"

	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

// TracepointTrack shows tracepoint hits of one thread, or of every process
// when bound to capture.AllThreadsOfAllProcesses. All hits share one colour.
type TracepointTrack struct {
	Track

	color    geom.Color
	barColor geom.Color
}

func NewTracepointTrack(data *capture.Capture, tid capture.ThreadID, sel Selection) *TracepointTrack {
	t := &TracepointTrack{
		Track:    newTrack(data, capture.SourceKey{Kind: capture.KindTracepoints, Thread: tid}, sel),
		color:    colorWhiteTranslucid,
		barColor: colorRed500.WithAlpha(60),
	}
	t.SetDraggable(false)
	t.SetAccessibleFactory(func() a11y.Accessible { return &accessibleBar{el: t, name: "Tracepoints"} })
	return t
}

var _ view.Element = (*TracepointTrack)(nil)

// SetColor changes the colour of every hit.
func (t *TracepointTrack) SetColor(c geom.Color) {
	t.color = c
}

func (t *TracepointTrack) Color() geom.Color {
	return t.color
}

func (t *TracepointTrack) Draw(c view.Canvas, mode view.PickingMode, z float64) {
	t.Base.Draw(c, mode, z)
	if t.IsEmpty() {
		return
	}
	drawEventBar(c.Batcher(), t, t.barColor, mode, z)
}

func (t *TracepointTrack) UpdatePrimitives(b *batch.Batch, f view.Frame, mode view.PickingMode, z float64) {
	if !f.Valid() || t.IsEmpty() {
		return
	}
	r := t.ScreenRect()
	if r.Empty() {
		return
	}
	width := 1.0
	if mode != view.PickingNone {
		width = f.Layout.PickingBoxWidth
	}
	c := newCoalescer(f.Transform)
	t.data.ForEachRecord(t.key, f.Min, f.Max, func(rec capture.Record) bool {
		x0, _, ok := c.span(rec)
		if !ok {
			return true
		}
		box := pickingBox(x0, r.Pos.Y, r.Size.Y, width)
		x0, x1, ok := clip(f.Transform, box.Pos.X, box.Max().X)
		if !ok {
			return true
		}
		box.Pos.X, box.Size.X = x0, x1-x0
		id := batch.NewID(batch.KindLine, t.ElementID(), uint32(rec.Index))
		b.Add(batch.Box(box, batch.ZEvent, t.color, id), z, t)
		return true
	})
}

// Tooltip describes a tracepoint hit. The all-process track also names the
// process and thread that hit it.
func (t *TracepointTrack) Tooltip(id batch.ID) string {
	switch id.Kind() {
	case batch.KindElement:
		return "Tracepoints"
	case batch.KindLine:
	default:
		return ""
	}
	ev, ok := t.data.Tracepoint(int(id.Index()))
	if !ok {
		return ""
	}
	info, ok := t.data.TracepointInfo(ev.InfoKey)
	if !ok {
		return ""
	}
	tip := tooltip{title: fmt.Sprintf("%s : %s", info.Category, info.Name), kind: "Tracepoint event"}
	tip.row("Core", "%d", ev.CPU)
	if t.Thread() == capture.AllThreadsOfAllProcesses {
		process := capture.UnknownName
		if ev.Pid == t.data.ProcessID() {
			process = t.data.ProcessName()
		}
		tip.row("Process", "%s [%d]", process, ev.Pid)
		tip.row("Thread", "%s", threadLabel(t.data, ev.Tid))
	}
	tip.row("Time", "%s", formatTimestamp(t.data, ev.Time))
	return tip.String()
}
