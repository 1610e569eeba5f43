// Package picking resolves screen coordinates to timeline elements and runs
// the pick/drag/release protocol on them.
package picking

import (
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

// Mode selects how a coordinate is resolved.
type Mode int

const (
	// Primitive reads the identifier rendered at the pixel.
	Primitive Mode = iota
	// Geometric walks element rectangles back to front.
	Geometric
)

func (m Mode) String() string {
	if m == Geometric {
		return "geometric"
	}
	return "primitive"
}

// Result is the outcome of a pick. OK is false for empty screen space.
type Result struct {
	OK      bool
	Mode    Mode
	Element view.Element
	ID      batch.ID
}

// Manager is scoped to one capture view. It reads the batch and pick buffer
// of the last submitted frame and tracks the element currently picked.
type Manager struct {
	registry *view.Registry
	batch    *batch.Batch
	buffer   *batch.PickBuffer
	root     view.Element
	picked   view.Element
}

// New binds a manager to the frame storage of a session.
func New(registry *view.Registry, b *batch.Batch, buffer *batch.PickBuffer) *Manager {
	return &Manager{registry: registry, batch: b, buffer: buffer}
}

// SetRoot installs the element tree used for geometric picking.
func (m *Manager) SetRoot(root view.Element) {
	m.root = root
}

// Reset forgets the picked element, releasing it first. Used when the element
// tree is rebuilt.
func (m *Manager) Reset() {
	if m.picked != nil {
		m.picked.OnRelease()
	}
	m.picked = nil
}

// PickPrimitive resolves the identifier rendered at (x, y) in the last
// submitted frame.
func (m *Manager) PickPrimitive(x, y float64) Result {
	id := m.buffer.At(cell(x), cell(y))
	if !id.Valid() {
		return Result{}
	}
	target, ok := m.batch.Target(id)
	if !ok {
		return Result{}
	}
	el, ok := target.(view.Element)
	if !ok {
		el, ok = m.registry.Lookup(target.ElementID())
		if !ok {
			return Result{}
		}
	}
	return Result{OK: true, Mode: Primitive, Element: el, ID: id}
}

// PickGeometric returns the topmost non-empty element below the root whose
// screen rectangle contains (x, y). Later siblings and deeper descendants are
// on top. The root itself is never picked.
func (m *Manager) PickGeometric(x, y float64) Result {
	if m.root == nil {
		return Result{}
	}
	p := geom.Vec2{X: x, Y: y}
	children := m.root.Node().Children()
	for i := len(children) - 1; i >= 0; i-- {
		if el := topmost(children[i], p); el != nil {
			return Result{OK: true, Mode: Geometric, Element: el}
		}
	}
	return Result{}
}

// Pick tries the primitive index first and falls back to geometry.
func (m *Manager) Pick(x, y float64) Result {
	if r := m.PickPrimitive(x, y); r.OK {
		return r
	}
	return m.PickGeometric(x, y)
}

func topmost(e view.Element, p geom.Vec2) view.Element {
	if e == nil {
		return nil
	}
	children := e.Node().Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := topmost(children[i], p); hit != nil {
			return hit
		}
	}
	if e.IsEmpty() {
		return nil
	}
	if e.Node().ScreenRect().Contains(p) {
		return e
	}
	return nil
}

// MouseDown picks the element under (x, y) and starts the pick protocol on
// it. A previously picked element is released first.
func (m *Manager) MouseDown(x, y float64) Result {
	m.Reset()
	r := m.Pick(x, y)
	if !r.OK {
		return r
	}
	r.Element.OnPick(x, y)
	m.picked = r.Element
	return r
}

// MouseMove forwards a drag to the picked element. It reports whether an
// element received it.
func (m *Manager) MouseMove(x, y float64) bool {
	if m.picked == nil {
		return false
	}
	m.picked.OnDrag(x, y)
	return true
}

// MouseUp releases the picked element and returns it.
func (m *Manager) MouseUp(x, y float64) (view.Element, bool) {
	if m.picked == nil {
		return nil, false
	}
	m.picked.OnDrag(x, y)
	el := m.picked
	el.OnRelease()
	m.picked = nil
	return el, true
}

// Picked returns the element currently being dragged.
func (m *Manager) Picked() (view.Element, bool) {
	return m.picked, m.picked != nil
}

// IsPicked reports whether e is the picked element.
func (m *Manager) IsPicked(e view.Element) bool {
	return m.picked != nil && e != nil && m.picked == e
}

// Tooltip describes the primitive under (x, y), or returns "" when nothing
// with a description is there.
func (m *Manager) Tooltip(x, y float64) string {
	r := m.PickPrimitive(x, y)
	if !r.OK {
		return ""
	}
	t, ok := r.Element.(view.Tooltipper)
	if !ok {
		return ""
	}
	return t.Tooltip(r.ID)
}

func cell(v float64) int {
	if v < 0 {
		return -1
	}
	return int(v)
}
