package session

import (
	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

// ZOffsetMovingTrack lifts a dragged track above every other track.
const ZOffsetMovingTrack = 1.0

// Root is the time graph element: its children are the top-level tracks and
// its position carries the vertical scroll offset.
type Root struct {
	view.Base
}

func newRoot() *Root {
	r := &Root{}
	r.SetDraggable(false)
	r.SetAccessibleFactory(func() a11y.Accessible { return &accessibleTimeGraph{root: r} })
	return r
}

var _ view.Element = (*Root)(nil)

func (r *Root) IsEmpty() bool {
	for _, c := range r.Children() {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (r *Root) Draw(c view.Canvas, mode view.PickingMode, z float64) {
	r.Base.Draw(c, mode, z)
	for _, child := range r.shown() {
		child.Draw(c, mode, z+trackZ(child))
	}
}

func (r *Root) UpdatePrimitives(b *batch.Batch, f view.Frame, mode view.PickingMode, z float64) {
	for _, child := range r.shown() {
		child.UpdatePrimitives(b, f, mode, z+trackZ(child))
	}
}

// shown returns the children that take space, in draw order.
func (r *Root) shown() []view.Element {
	var out []view.Element
	for _, c := range r.Children() {
		if !c.IsEmpty() && !c.Node().Rect().Empty() {
			out = append(out, c)
		}
	}
	return out
}

func trackZ(e view.Element) float64 {
	if e.Node().Picked() && e.Draggable() {
		return ZOffsetMovingTrack
	}
	return 0
}

// accessibleTimeGraph exposes the visible tracks.
type accessibleTimeGraph struct {
	root *Root
}

func (a *accessibleTimeGraph) AccessibleName() string    { return "Capture" }
func (a *accessibleTimeGraph) AccessibleRole() a11y.Role { return a11y.RoleGraphic }

func (a *accessibleTimeGraph) AccessibleRect() geom.Rect {
	if c := a.root.Canvas(); c != nil {
		f := c.Frame()
		return geom.RectOf(0, 0, f.Transform.Left+f.Transform.Width+f.Layout.RightMargin, a.root.Size().Y)
	}
	return a.root.Rect()
}

func (a *accessibleTimeGraph) AccessibleChildren() []a11y.Accessible {
	var out []a11y.Accessible
	for _, c := range a.root.shown() {
		if acc := c.Node().GetOrCreateAccessibleInterface(); acc != nil {
			out = append(out, acc)
		}
	}
	return out
}
