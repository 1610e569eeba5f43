// Package track implements the timeline lanes: thread state strips,
// tracepoint and sample bars, and the thread track that stacks them above its
// timer rows.
package track

import (
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/view"
)

// Selection is the slice of session state tracks read and write when the
// user selects a thread or samples.
type Selection interface {
	SelectedThread() (capture.ThreadID, bool)
	SelectThread(tid capture.ThreadID)
	SampleSelected(index int) bool
	SelectSamples(tid capture.ThreadID, indices []int)
}

type noSelection struct{}

func (noSelection) SelectedThread() (capture.ThreadID, bool) { return 0, false }
func (noSelection) SelectThread(capture.ThreadID)            {}
func (noSelection) SampleSelected(int) bool                  { return false }
func (noSelection) SelectSamples(capture.ThreadID, []int)    {}

// Track binds an element to one data series of an immutable capture.
type Track struct {
	view.Base

	data      *capture.Capture
	key       capture.SourceKey
	selection Selection
}

func newTrack(data *capture.Capture, key capture.SourceKey, sel Selection) Track {
	if sel == nil {
		sel = noSelection{}
	}
	return Track{data: data, key: key, selection: sel}
}

func (t *Track) Capture() *capture.Capture { return t.data }
func (t *Track) Key() capture.SourceKey    { return t.key }
func (t *Track) Thread() capture.ThreadID  { return t.key.Thread }

// IsEmpty asks the capture every time; nothing is cached across reloads.
func (t *Track) IsEmpty() bool {
	return t.data.IsEmpty(t.key)
}

// clip limits [x0, x1) to the plot area of the transform.
func clip(t timegraph.Transform, x0, x1 float64) (float64, float64, bool) {
	lo, hi := t.Left, t.Left+t.Width
	if x0 < lo {
		x0 = lo
	}
	if x1 > hi {
		x1 = hi
	}
	return x0, x1, x1 > x0
}

// coalescer decides which records of one row reach the batch. With d ticks per
// pixel column, records longer than d get their own box. A shorter record
// gets a one pixel box in its column, and later records that start in that
// column or end before it ends are skipped. Columns are aligned to the transform origin so the
// decision does not depend on the queried window.
type coalescer struct {
	t           timegraph.Transform
	delta       capture.Tick
	ignoreUntil capture.Tick
	active      bool
}

func newCoalescer(t timegraph.Transform) *coalescer {
	return &coalescer{t: t, delta: t.TicksPerPixel()}
}

// span returns the pixel extent of r, or false when r is hidden behind a
// column drawn before.
func (c *coalescer) span(r capture.Record) (float64, float64, bool) {
	if c.delta > 0 && r.Duration <= c.delta {
		end := c.t.ColumnEnd(r.Start)
		if c.active && (r.End() < c.ignoreUntil || end == c.ignoreUntil) {
			return 0, 0, false
		}
		c.ignoreUntil = end
		c.active = true
		x0 := c.t.Pixel(end - c.delta)
		return x0, x0 + 1, true
	}
	x0 := c.t.Pixel(r.Start)
	x1 := c.t.Pixel(r.End())
	if x1-x0 < 1 {
		x1 = x0 + 1
	}
	return x0, x1, true
}
