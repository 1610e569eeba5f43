package view

import "github.com/atomicstack/timegraph/internal/batch"

// Registry issues element identifiers for one session. Identifiers are never
// reused while the registry lives.
type Registry struct {
	next     uint32
	elements map[uint32]Element
}

func NewRegistry() *Registry {
	return &Registry{elements: make(map[uint32]Element)}
}

// Register assigns the next identifier to e and returns it. Elements that
// already carry an identifier keep it.
func (r *Registry) Register(e Element) uint32 {
	n := e.Node()
	if n.id != 0 {
		r.elements[n.id] = e
		return n.id
	}
	if r.next >= batch.MaxElement {
		// identifiers no longer fit a picking id; leave the element unpickable
		return 0
	}
	r.next++
	n.id = r.next
	r.elements[n.id] = e
	return n.id
}

// Unregister forgets e and its descendants.
func (r *Registry) Unregister(e Element) {
	Walk(e, func(el Element) bool {
		delete(r.elements, el.Node().id)
		return true
	})
}

// Lookup returns the element registered under id.
func (r *Registry) Lookup(id uint32) (Element, bool) {
	e, ok := r.elements[id]
	return e, ok
}

func (r *Registry) Len() int {
	return len(r.elements)
}
