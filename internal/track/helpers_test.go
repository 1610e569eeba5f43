package track

import (
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/view"
)

type testCanvas struct {
	b *batch.Batch
	f view.Frame
}

func (c *testCanvas) Batcher() *batch.Batch { return c.b }
func (c *testCanvas) Frame() view.Frame     { return c.f }

// unitFrame maps one tick to one pixel over [0, 1000).
func unitFrame() view.Frame {
	return view.Frame{
		Transform: timegraph.Transform{Origin: 0, Scale: 1, Left: 0, Width: 1000},
		Layout:    timegraph.DefaultLayout(),
		Min:       0,
		Max:       1000,
	}
}

func newCanvas(f view.Frame) *testCanvas {
	return &testCanvas{b: batch.New(), f: f}
}

type recorder struct {
	thread    capture.ThreadID
	hasThread bool
	sampleTid capture.ThreadID
	samples   []int
	selected  map[int]bool
}

func (r *recorder) SelectedThread() (capture.ThreadID, bool) { return r.thread, r.hasThread }

func (r *recorder) SelectThread(tid capture.ThreadID) {
	r.thread, r.hasThread = tid, true
}

func (r *recorder) SampleSelected(index int) bool { return r.selected[index] }

func (r *recorder) SelectSamples(tid capture.ThreadID, indices []int) {
	r.sampleTid, r.samples = tid, indices
}

func register(elements ...view.Element) {
	reg := view.NewRegistry()
	for _, e := range elements {
		view.Walk(e, func(el view.Element) bool {
			reg.Register(el)
			return true
		})
	}
}

// boxesAt returns the primitives drawn at z whose kind matches.
func boxesAt(b *batch.Batch, z float64, kind batch.Kind) []batch.Primitive {
	var out []batch.Primitive
	for _, p := range b.Primitives() {
		if p.Z == z && p.ID.Kind() == kind {
			out = append(out, p)
		}
	}
	return out
}
