// Package session ties one capture view together: the time-graph context, the
// element tree, the frame storage and the picking manager all live and die
// with a Session.
package session

import (
	"math"

	"github.com/google/uuid"

	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/logging/events"
	"github.com/atomicstack/timegraph/internal/picking"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/track"
	"github.com/atomicstack/timegraph/internal/view"
)

// Session is a capture view. It is driven from a single goroutine.
type Session struct {
	id uuid.UUID

	graph     *timegraph.Context
	registry  *view.Registry
	batch     *batch.Batch
	buffer    *batch.PickBuffer
	picking   *picking.Manager
	root      *Root
	tracks    *TrackManager
	selection track.Selection

	data   *capture.Capture
	frame  view.Frame
	mode   view.PickingMode
	scroll float64
	closed bool
}

// New opens an empty session.
func New(layout timegraph.Layout, sel track.Selection) *Session {
	s := &Session{
		id:        uuid.New(),
		graph:     timegraph.New(layout),
		registry:  view.NewRegistry(),
		batch:     batch.New(),
		buffer:    batch.NewPickBuffer(0, 0),
		root:      newRoot(),
		selection: sel,
	}
	s.picking = picking.New(s.registry, s.batch, s.buffer)
	s.picking.SetRoot(s.root)
	s.tracks = NewTrackManager(s.root, s.registry, sel)
	events.Session.Open(s.id.String())
	return s
}

func (s *Session) ID() string                { return s.id.String() }
func (s *Session) Graph() *timegraph.Context { return s.graph }
func (s *Session) Picking() *picking.Manager { return s.picking }
func (s *Session) Tracks() *TrackManager     { return s.tracks }
func (s *Session) Root() *Root               { return s.root }
func (s *Session) Capture() *capture.Capture { return s.data }

// Batcher implements view.Canvas.
func (s *Session) Batcher() *batch.Batch { return s.batch }

// Frame implements view.Canvas: the frame being built or last built.
func (s *Session) Frame() view.Frame { return s.frame }

// Mode is the picking mode of the last built frame.
func (s *Session) Mode() view.PickingMode { return s.mode }

// OnDataChanged rebuilds every track against data. It must run between
// frames; the previous tracks are torn down and any drag is cancelled.
func (s *Session) OnDataChanged(data *capture.Capture) {
	if s.closed {
		return
	}
	s.picking.Reset()
	s.data = data
	s.tracks.Rebuild(data)
	min, max := data.Range()
	s.graph.SetCaptureRange(min, max)
	events.Session.DataChanged(s.ID(), data.Version(), len(s.tracks.Order()))
}

// Resize updates the canvas size in cells.
func (s *Session) Resize(width, height int) {
	s.graph.SetViewport(float64(width), float64(height))
	s.clampScroll()
	events.View.Resize(width, height)
}

// BuildFrame resets the batch and repopulates it for the current view state:
// layout, chrome, data primitives, then the pick buffer.
func (s *Session) BuildFrame(mode view.PickingMode) view.Frame {
	s.batch.Reset()
	t := s.graph.Transform()
	w := t.Window()
	s.mode = mode
	s.frame = view.Frame{Transform: t, Layout: s.graph.Layout(), Min: w.Min, Max: w.Max}

	width, height := s.graph.Viewport()
	if s.data == nil || width <= 0 || height <= 0 {
		s.buffer.Rasterize(s.batch, int(width), int(height))
		events.Frame.Skipped("no data or empty viewport")
		return s.frame
	}
	total := s.tracks.Layout(s.frame.Layout, width)
	s.clampScroll()
	s.root.SetPos(0, -s.scroll)
	s.root.SetSize(width, total)

	s.root.Draw(s, mode, 0)
	s.root.UpdatePrimitives(s.batch, s.frame, mode, 0)
	s.buffer.Rasterize(s.batch, int(width), int(height))
	events.Frame.Built(mode.String(), uint64(w.Min), uint64(w.Max), s.batch.Len(), s.batch.IDs())
	return s.frame
}

// MouseDown resolves a click on a fresh click-mode frame and picks the
// element under it.
func (s *Session) MouseDown(x, y float64) picking.Result {
	s.BuildFrame(view.PickingClick)
	r := s.picking.MouseDown(x, y)
	if !r.OK {
		events.Pick.Miss(x, y)
		return r
	}
	events.Pick.Resolved(r.Mode.String(), x, y, r.Element.ElementID(), r.ID.String())
	return r
}

// MouseMove drags the picked element, if any.
func (s *Session) MouseMove(x, y float64) bool {
	el, ok := s.picking.Picked()
	if !ok {
		return false
	}
	s.picking.MouseMove(x, y)
	events.Track.Drag(el.ElementID(), x, y)
	return true
}

// MouseUp releases the picked element. Releasing a top-level track reorders
// the tracks by position.
func (s *Session) MouseUp(x, y float64) bool {
	el, ok := s.picking.MouseUp(x, y)
	if !ok {
		return false
	}
	events.Pick.Release(el.ElementID())
	if el.Node().Parent() == view.Element(s.root) && el.Draggable() {
		s.tracks.SortByPosition()
		order := s.tracks.Order()
		ids := make([]int32, len(order))
		for i, tid := range order {
			ids[i] = int32(tid)
		}
		events.Track.Reorder(ids)
	}
	return true
}

// Dragging reports whether an element is picked.
func (s *Session) Dragging() bool {
	_, ok := s.picking.Picked()
	return ok
}

// Tooltip describes what is under (x, y) in a hover-mode frame. The frame is
// rebuilt only when the last one was built for another mode.
func (s *Session) Tooltip(x, y float64) string {
	if s.mode != view.PickingHover {
		s.BuildFrame(view.PickingHover)
	}
	return s.picking.Tooltip(x, y)
}

// Zoom scales the time axis around column x.
func (s *Session) Zoom(factor, x float64) {
	s.graph.Zoom(factor, x)
	s.traceZoom(factor)
}

func (s *Session) ZoomIn(x float64) {
	s.graph.ZoomIn(x)
	s.traceZoom(s.graph.Layout().ZoomStep)
}

func (s *Session) ZoomOut(x float64) {
	s.graph.ZoomOut(x)
	s.traceZoom(1 / s.graph.Layout().ZoomStep)
}

func (s *Session) traceZoom(factor float64) {
	w := s.graph.Transform().Window()
	events.View.Zoom(factor, uint64(w.Min), uint64(w.Max))
}

// Pan shifts the time axis by dx columns.
func (s *Session) Pan(dx float64) {
	s.graph.Pan(dx)
	w := s.graph.Transform().Window()
	events.View.Pan(dx, uint64(w.Min), uint64(w.Max))
}

// ZoomToFit shows the whole capture.
func (s *Session) ZoomToFit() {
	s.graph.ZoomToFit()
	w := s.graph.Transform().Window()
	events.View.Fit(uint64(w.Min), uint64(w.Max))
}

// Scroll moves the track list by dy rows.
func (s *Session) Scroll(dy float64) {
	s.scroll += dy
	s.clampScroll()
	events.View.Scroll(s.scroll)
}

func (s *Session) ScrollOffset() float64 { return s.scroll }

func (s *Session) clampScroll() {
	_, height := s.graph.Viewport()
	limit := math.Max(s.tracks.Height()-height, 0)
	s.scroll = math.Min(math.Max(s.scroll, 0), limit)
}

// RevealTrack scrolls the least amount that brings the track of tid fully
// into view, as laid out by the last frame.
func (s *Session) RevealTrack(tid capture.ThreadID) bool {
	t, ok := s.tracks.Track(tid)
	if !ok || t.Size().Y <= 0 {
		return false
	}
	_, height := s.graph.Viewport()
	top, bottom := t.Pos().Y, t.Pos().Y+t.Size().Y
	switch {
	case top < s.scroll:
		s.scroll = top
	case bottom > s.scroll+height:
		s.scroll = bottom - height
	}
	s.clampScroll()
	return true
}

// SetFilter hides tracks whose name does not match query.
func (s *Session) SetFilter(query string) {
	s.tracks.SetFilter(query)
	s.scroll = 0
}

// Accessible snapshots the accessibility tree of the last frame.
func (s *Session) Accessible() a11y.Node {
	return a11y.Snapshot(s.root.GetOrCreateAccessibleInterface())
}

// Close tears the session down. The element tree is released and further
// data changes are ignored.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.picking.Reset()
	s.registry.Unregister(s.root)
	s.root.RemoveChildren()
	s.batch.Reset()
	events.Session.Close(s.ID())
}
