package track

import (
	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

// ThreadStateTrack is the thin strip showing the scheduler state of one
// thread. It cannot be dragged on its own.
type ThreadStateTrack struct {
	Track
}

func NewThreadStateTrack(data *capture.Capture, tid capture.ThreadID, sel Selection) *ThreadStateTrack {
	t := &ThreadStateTrack{Track: newTrack(data, capture.SourceKey{Kind: capture.KindThreadStates, Thread: tid}, sel)}
	t.SetDraggable(false)
	t.SetAccessibleFactory(func() a11y.Accessible { return &accessibleBar{el: t, name: "ThreadState"} })
	return t
}

var _ view.Element = (*ThreadStateTrack)(nil)

func (t *ThreadStateTrack) UpdatePrimitives(b *batch.Batch, f view.Frame, mode view.PickingMode, z float64) {
	if !f.Valid() || t.IsEmpty() {
		return
	}
	r := t.ScreenRect()
	if r.Empty() {
		return
	}
	c := newCoalescer(f.Transform)
	t.data.ForEachRecord(t.key, f.Min, f.Max, func(rec capture.Record) bool {
		x0, x1, ok := c.span(rec)
		if !ok {
			return true
		}
		if x0, x1, ok = clip(f.Transform, x0, x1); !ok {
			return true
		}
		color := StateColor(capture.ThreadState(rec.Discriminator))
		id := batch.NewID(batch.KindBox, t.ElementID(), uint32(rec.Index))
		b.Add(batch.Box(geom.RectOf(x0, r.Pos.Y, x1-x0, r.Size.Y), batch.ZBox, color, id), z, t)
		return true
	})
}

// Tooltip describes the slice behind id from a fresh capture lookup.
func (t *ThreadStateTrack) Tooltip(id batch.ID) string {
	if id.Kind() != batch.KindBox {
		return ""
	}
	slice, ok := t.data.ThreadStateSlice(int(id.Index()))
	if !ok || slice.Thread != t.Thread() {
		return ""
	}
	tip := tooltip{title: slice.State.String(), kind: "Thread state"}
	tip.row("Thread", "%s", threadLabel(t.data, slice.Thread))
	tip.row("Start", "%s", formatTimestamp(t.data, slice.Begin))
	tip.row("Duration", "%s", formatDuration(slice.End-slice.Begin))
	tip.body = []string{StateDescription(slice.State)}
	return tip.String()
}
