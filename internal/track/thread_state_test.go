package track

import (
	"strings"
	"testing"

	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/testutil"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/view"
)

func TestThreadStateBoxesFollowSlices(t *testing.T) {
	data := testutil.TwoStates(t)
	tr := NewThreadStateTrack(data, testutil.MainThread, nil)
	register(tr)
	tr.SetSize(1000, 1)
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingNone, 0)
	tr.UpdatePrimitives(c.b, c.f, view.PickingNone, 0)

	boxes := boxesAt(c.b, batch.ZBox, batch.KindBox)
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}
	if boxes[0].Rect != geom.RectOf(100, 0, 100, 1) || boxes[1].Rect != geom.RectOf(200, 0, 150, 1) {
		t.Fatalf("unexpected rects %#v %#v", boxes[0].Rect, boxes[1].Rect)
	}
	if boxes[0].Color != StateColor(capture.StateRunning) || boxes[1].Color != StateColor(capture.StateRunnable) {
		t.Fatalf("expected state colours")
	}
	if tr.Draggable() {
		t.Fatalf("expected thread state track to be pinned")
	}
}

func TestThreadStateTooltip(t *testing.T) {
	data := testutil.TwoStates(t)
	tr := NewThreadStateTrack(data, testutil.MainThread, nil)
	register(tr)
	tip := tr.Tooltip(batch.NewID(batch.KindBox, tr.ElementID(), 1))
	for _, want := range []string{"Runnable", "(Thread state)", "main [101]", "150 ns", "not scheduled"} {
		if !strings.Contains(tip, want) {
			t.Fatalf("expected tooltip to contain %q, got:\n%s", want, tip)
		}
	}
	if got := tr.Tooltip(batch.NewID(batch.KindLine, tr.ElementID(), 1)); got != "" {
		t.Fatalf("expected no tooltip for other kinds, got %q", got)
	}
}

func TestThreadStateTooltipRejectsForeignThread(t *testing.T) {
	data := testutil.Small(t)
	tr := NewThreadStateTrack(data, testutil.IOThread, nil)
	register(tr)
	// slice 0 belongs to the main thread
	if got := tr.Tooltip(batch.NewID(batch.KindBox, tr.ElementID(), 0)); got != "" {
		t.Fatalf("expected empty tooltip, got %q", got)
	}
}

func denseStates(t *testing.T) *capture.Capture {
	t.Helper()
	b := capture.NewBuilder(1, "dense").AddThread(2, "dense")
	for i := 0; i < 100; i++ {
		state := capture.StateRunning
		if i%2 == 1 {
			state = capture.StateRunnable
		}
		b.AddThreadState(2, state, capture.Tick(i), capture.Tick(i+1))
	}
	return testutil.MustBuild(t, b)
}

func coarseFrame(max capture.Tick) view.Frame {
	return view.Frame{
		Transform: timegraph.Transform{Origin: 0, Scale: 0.1, Left: 0, Width: 100},
		Layout:    timegraph.DefaultLayout(),
		Min:       0,
		Max:       max,
	}
}

func TestCoalescingCapsBoxesPerColumn(t *testing.T) {
	tr := NewThreadStateTrack(denseStates(t), 2, nil)
	register(tr)
	tr.SetSize(100, 1)
	c := newCanvas(coarseFrame(1000))
	tr.UpdatePrimitives(c.b, c.f, view.PickingNone, 0)
	boxes := boxesAt(c.b, batch.ZBox, batch.KindBox)
	if len(boxes) != 10 {
		t.Fatalf("expected one coalesced box per column, got %d", len(boxes))
	}
	columns := map[float64]bool{}
	for _, p := range boxes {
		if p.Rect.Size.X != 1 {
			t.Fatalf("expected one pixel wide boxes, got %v", p.Rect.Size.X)
		}
		if columns[p.Rect.Pos.X] {
			t.Fatalf("expected a single box in column %v", p.Rect.Pos.X)
		}
		columns[p.Rect.Pos.X] = true
	}
}

func TestCoalescingIsStableAcrossWindows(t *testing.T) {
	data := denseStates(t)
	tr := NewThreadStateTrack(data, 2, nil)
	register(tr)
	tr.SetSize(100, 1)

	narrow := newCanvas(coarseFrame(50))
	tr.UpdatePrimitives(narrow.b, narrow.f, view.PickingNone, 0)
	wide := newCanvas(coarseFrame(100))
	tr.UpdatePrimitives(wide.b, wide.f, view.PickingNone, 0)

	drawn := map[geom.Rect]bool{}
	for _, p := range wide.b.Primitives() {
		drawn[p.Rect] = true
	}
	for _, p := range narrow.b.Primitives() {
		if !drawn[p.Rect] {
			t.Fatalf("box %#v from the narrower window is missing from the wider one", p.Rect)
		}
	}
}

func TestEmptyTrackEmitsNothing(t *testing.T) {
	data := testutil.Small(t)
	tr := NewThreadStateTrack(data, 555, nil)
	register(tr)
	tr.SetSize(1000, 1)
	if !tr.IsEmpty() {
		t.Fatalf("expected track without records to be empty")
	}
	c := newCanvas(unitFrame())
	tr.UpdatePrimitives(c.b, c.f, view.PickingNone, 0)
	if c.b.Len() != 0 {
		t.Fatalf("expected no primitives, got %d", c.b.Len())
	}
}
