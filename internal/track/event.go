package track

import (
	"math"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

const (
	callstackMaxLines      = 20
	callstackBottomLines   = 5
	callstackMaxLineLength = 80
	callstackShortened     = "... shortened for readability ..."
	sampleHint             = "To select samples, click the bar & drag across multiple samples"
	eventBarHint           = "Left-click and drag to select samples"
)

// EventTrack shows callstack samples of one thread, or of the whole process
// when bound to capture.AllProcessThreads. Dragging across the bar selects
// the samples in the dragged range.
type EventTrack struct {
	Track

	color geom.Color
}

func NewEventTrack(data *capture.Capture, tid capture.ThreadID, sel Selection) *EventTrack {
	t := &EventTrack{
		Track: newTrack(data, capture.SourceKey{Kind: capture.KindCallstacks, Thread: tid}, sel),
		color: colorGreen500.WithAlpha(40),
	}
	t.SetDraggable(false)
	t.SetAccessibleFactory(func() a11y.Accessible { return &accessibleBar{el: t, name: "Callstacks"} })
	return t
}

var _ view.Element = (*EventTrack)(nil)

// SetColor sets the bar colour, usually derived from the owning thread.
func (t *EventTrack) SetColor(c geom.Color) {
	t.color = c
}

func (t *EventTrack) Draw(c view.Canvas, mode view.PickingMode, z float64) {
	t.Base.Draw(c, mode, z)
	if t.IsEmpty() {
		return
	}
	b := c.Batcher()
	r := drawEventBar(b, t, t.color, mode, z)
	if r.Empty() || !t.Picked() {
		return
	}
	// drag range
	from, to := t.MouseAtPick().X, t.Mouse().X
	if to < from {
		from, to = to, from
	}
	b.Add(batch.Box(geom.RectOf(from, r.Pos.Y, math.Max(to-from, 1), r.Size.Y), batch.ZUI, colorDragRange, batch.NoID), z, nil)
}

func (t *EventTrack) UpdatePrimitives(b *batch.Batch, f view.Frame, mode view.PickingMode, z float64) {
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
		if t.selection.SampleSelected(rec.Index) {
			// selected samples are never coalesced away
			t.addSample(b, f, rec, f.Transform.Pixel(rec.Start), r, width, colorSelection, z)
			return true
		}
		if x0, _, ok := c.span(rec); ok {
			t.addSample(b, f, rec, x0, r, width, colorWhite, z)
		}
		return true
	})
}

func (t *EventTrack) addSample(b *batch.Batch, f view.Frame, rec capture.Record, x float64, r geom.Rect, width float64, color geom.Color, z float64) {
	box := pickingBox(x, r.Pos.Y, r.Size.Y, width)
	x0, x1, ok := clip(f.Transform, box.Pos.X, box.Max().X)
	if !ok {
		return
	}
	box.Pos.X, box.Size.X = x0, x1-x0
	id := batch.NewID(batch.KindLine, t.ElementID(), uint32(rec.Index))
	b.Add(batch.Box(box, batch.ZEvent, color, id), z, t)
}

// OnPick selects the thread the bar belongs to.
func (t *EventTrack) OnPick(x, y float64) {
	t.Base.OnPick(x, y)
	if t.Thread() >= 0 {
		t.selection.SelectThread(t.Thread())
	}
}

// OnRelease selects every sample between the pick and release columns.
func (t *EventTrack) OnRelease() {
	wasPicked := t.Picked()
	t.Base.OnRelease()
	if !wasPicked || t.Canvas() == nil {
		return
	}
	tr := t.Canvas().Frame().Transform
	if !tr.Valid() {
		return
	}
	from, to := t.MouseAtPick().X, t.Mouse().X
	if to < from {
		from, to = to, from
	}
	t.selection.SelectSamples(t.Thread(), t.SamplesBetween(tr.TickAt(from), tr.TickAt(to)))
}

// SamplesBetween returns the indices of the samples in [min, max].
func (t *EventTrack) SamplesBetween(min, max capture.Tick) []int {
	var out []int
	t.data.ForEachRecord(t.key, min, max, func(rec capture.Record) bool {
		out = append(out, rec.Index)
		return true
	})
	return out
}

// Tooltip lists the sampled callstack, innermost frame first.
func (t *EventTrack) Tooltip(id batch.ID) string {
	switch id.Kind() {
	case batch.KindElement:
		return eventBarHint
	case batch.KindLine:
	default:
		return ""
	}
	ev, ok := t.data.CallstackEvent(int(id.Index()))
	if !ok {
		return "Function call information missing"
	}
	cs, ok := t.data.Callstack(ev.CallstackID)
	if !ok || len(cs.Frames) == 0 {
		return "Function call information missing"
	}
	symbols := t.data.Symbols()
	tip := tooltip{title: symbols.NameAt(cs.Frames[0]), kind: "Sampled event"}
	tip.row("Thread", "%s", threadLabel(t.data, ev.Tid))
	tip.row("Time", "%s", formatTimestamp(t.data, ev.Time))
	tip.body = append([]string{"Callstack:"}, FormatCallstack(symbols, cs, callstackMaxLineLength, callstackMaxLines, callstackBottomLines)...)
	tip.body = append(tip.body, "", sampleHint)
	return tip.String()
}

// FormatCallstack renders at most maxLines frames: the innermost frames, a
// marker when frames were dropped, then the bottomLines outermost frames.
// A maxLines of zero or less keeps every frame.
func FormatCallstack(symbols *capture.SymbolTable, cs capture.Callstack, maxLineLength, maxLines, bottomLines int) []string {
	size := len(cs.Frames)
	if maxLines <= 0 {
		maxLines = size
	}
	bottom := min(maxLines-1, bottomLines, size)
	if bottom < 0 {
		bottom = 0
	}
	top := min(maxLines, size) - bottom

	name := func(addr uint64) string {
		n := symbols.NameAt(addr)
		if maxLineLength > 0 {
			n = truncate.StringWithTail(n, uint(maxLineLength), "...")
		}
		return n
	}
	out := make([]string, 0, top+bottom+1)
	for i := 0; i < top; i++ {
		out = append(out, name(cs.Frames[i]))
	}
	if maxLines < size {
		out = append(out, callstackShortened)
	}
	for i := size - bottom; i < size; i++ {
		out = append(out, name(cs.Frames[i]))
	}
	return out
}
