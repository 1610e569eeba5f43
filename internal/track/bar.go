package track

import (
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

// eventBarZ implements click-through: when resolving a click the transparent
// bar covers its slices so the click lands on the bar, otherwise it sits
// below them so hovering reaches individual slices.
func eventBarZ(mode view.PickingMode) float64 {
	if mode == view.PickingClick {
		return batch.ZEventBarPicking
	}
	return batch.ZEventBar
}

// drawEventBar emits the background box of a sub-track bar, registered to
// owner so a click on empty bar space picks the bar itself.
func drawEventBar(b *batch.Batch, owner view.Element, color geom.Color, mode view.PickingMode, z float64) geom.Rect {
	r := owner.Node().ScreenRect()
	if r.Empty() {
		return r
	}
	id := batch.NewID(batch.KindElement, owner.ElementID(), 0)
	b.Add(batch.Box(r, eventBarZ(mode), color, id), z, owner)
	return r
}

// pickingBox returns the box emitted for an instantaneous event at x. In
// picking modes it is widened to the layout's picking width, centred on x.
func pickingBox(x, y, height, width float64) geom.Rect {
	if width < 1 {
		width = 1
	}
	offset := (width - 1) / 2
	return geom.RectOf(x-offset, y, width, height)
}
