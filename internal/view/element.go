// Package view holds the positional, hierarchical building block of the
// timeline: every track and sub-track is an Element owned by its parent.
package view

import (
	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/timegraph"
)

// PickingMode tells a frame what the batch will be used for.
type PickingMode int

const (
	PickingNone PickingMode = iota
	PickingHover
	PickingClick
)

func (m PickingMode) String() string {
	switch m {
	case PickingHover:
		return "hover"
	case PickingClick:
		return "click"
	default:
		return "none"
	}
}

// Frame is the read-only state shared by every element while one frame is
// built. Min and Max bound the tick window to query.
type Frame struct {
	Transform timegraph.Transform
	Layout    timegraph.Layout
	Min       capture.Tick
	Max       capture.Tick
}

// Valid reports whether the frame can produce primitives.
func (f Frame) Valid() bool {
	return f.Transform.Valid() && f.Min < f.Max
}

// Canvas is the drawing surface bound during Draw.
type Canvas interface {
	Batcher() *batch.Batch
	Frame() Frame
}

// Element is the capability set every node of the timeline tree provides.
// Concrete elements embed Base and override what they need.
type Element interface {
	batch.Target

	Node() *Base
	Draw(c Canvas, mode PickingMode, z float64)
	UpdatePrimitives(b *batch.Batch, f Frame, mode PickingMode, z float64)
	IsEmpty() bool
	Draggable() bool
	OnPick(x, y float64)
	OnDrag(x, y float64)
	OnRelease()
}

// Tooltipper is implemented by elements that can describe one of their
// primitives from its picking identifier.
type Tooltipper interface {
	Tooltip(id batch.ID) string
}

// Base carries the state common to all elements. The zero value is a
// draggable element at the origin with no parent.
type Base struct {
	pos  geom.Vec2
	size geom.Vec2

	parent   Element
	children []Element

	id     uint32
	canvas Canvas

	picked      bool
	fixed       bool
	posAtPick   geom.Vec2
	mouseAtPick geom.Vec2
	mouse       geom.Vec2

	accessible  a11y.Accessible
	accessibleF func() a11y.Accessible
}

func (b *Base) Node() *Base { return b }

// ElementID is the identifier issued by the session registry; zero until
// registered.
func (b *Base) ElementID() uint32 { return b.id }

func (b *Base) Pos() geom.Vec2  { return b.pos }
func (b *Base) Size() geom.Vec2 { return b.size }

func (b *Base) SetPos(x, y float64) {
	b.pos = geom.Vec2{X: x, Y: y}
}

func (b *Base) SetSize(w, h float64) {
	b.size = geom.Vec2{X: w, Y: h}
}

// Rect is the local rectangle in the parent's content space.
func (b *Base) Rect() geom.Rect {
	return geom.Rect{Pos: b.pos, Size: b.size}
}

// ScreenRect accumulates the positions of every ancestor.
func (b *Base) ScreenRect() geom.Rect {
	r := b.Rect()
	for p := b.parent; p != nil; p = p.Node().parent {
		r = r.Translate(p.Node().pos)
	}
	return r
}

// Parent is a non-owning back reference.
func (b *Base) Parent() Element { return b.parent }

// Children returns the owned children in draw order.
func (b *Base) Children() []Element { return b.children }

// AddChild appends child and makes b's owner its parent. owner must be the
// element that embeds b.
func (b *Base) AddChild(owner, child Element) {
	if child == nil {
		return
	}
	child.Node().parent = owner
	b.children = append(b.children, child)
}

// RemoveChildren drops every child and clears their back references.
func (b *Base) RemoveChildren() {
	for _, c := range b.children {
		c.Node().parent = nil
	}
	b.children = nil
}

// SetChildren replaces the child order; every element must already be a
// child of b.
func (b *Base) SetChildren(children []Element) {
	b.children = append(b.children[:0:0], children...)
}

// Canvas returns the surface bound by the last Draw.
func (b *Base) Canvas() Canvas { return b.canvas }

// Draw binds the drawing surface. Elements that emit chrome override it and
// call it first.
func (b *Base) Draw(c Canvas, mode PickingMode, z float64) {
	b.canvas = c
}

// UpdatePrimitives emits nothing.
func (b *Base) UpdatePrimitives(*batch.Batch, Frame, PickingMode, float64) {}

// IsEmpty reports whether the element has nothing to show. Plain elements
// are empty when they have no area.
func (b *Base) IsEmpty() bool {
	return b.Rect().Empty()
}

// Draggable reports whether OnDrag may move the element.
func (b *Base) Draggable() bool { return !b.fixed }

// SetDraggable pins or unpins the element.
func (b *Base) SetDraggable(v bool) { b.fixed = !v }

func (b *Base) Picked() bool { return b.picked }

// OnPick marks the element picked and remembers where the drag started.
func (b *Base) OnPick(x, y float64) {
	b.picked = true
	b.mouseAtPick = geom.Vec2{X: x, Y: y}
	b.mouse = b.mouseAtPick
	b.posAtPick = b.pos
}

// OnDrag moves the element by the distance the mouse travelled since OnPick.
func (b *Base) OnDrag(x, y float64) {
	if !b.picked {
		return
	}
	b.mouse = geom.Vec2{X: x, Y: y}
	if b.fixed {
		return
	}
	b.pos = b.posAtPick.Add(b.mouse.Sub(b.mouseAtPick))
}

// OnRelease clears the picked state; the position is kept.
func (b *Base) OnRelease() {
	b.picked = false
}

// MouseAtPick is the position passed to the last OnPick.
func (b *Base) MouseAtPick() geom.Vec2 { return b.mouseAtPick }

// Mouse is the latest position seen by OnPick or OnDrag.
func (b *Base) Mouse() geom.Vec2 { return b.mouse }

// SetAccessibleFactory installs the constructor used by
// GetOrCreateAccessibleInterface.
func (b *Base) SetAccessibleFactory(f func() a11y.Accessible) {
	b.accessibleF = f
	b.accessible = nil
}

// GetOrCreateAccessibleInterface lazily builds and caches the facade. It
// returns nil for elements without one.
func (b *Base) GetOrCreateAccessibleInterface() a11y.Accessible {
	if b.accessible == nil && b.accessibleF != nil {
		b.accessible = b.accessibleF()
	}
	return b.accessible
}

// Walk visits e and its descendants depth first, in draw order. Returning
// false from fn skips the children of that element.
func Walk(e Element, fn func(Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.Node().children {
		Walk(c, fn)
	}
}
