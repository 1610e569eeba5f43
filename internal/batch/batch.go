package batch

import "sort"

// Target is the logical element a picking identifier resolves to.
type Target interface {
	ElementID() uint32
}

// Batch accumulates the primitives of one frame together with the picking
// index that maps each issued ID back to its owner.
//
// Add is append-only between two calls to Reset. Primitives with equal Z keep
// their submission order, so later submissions draw on top.
type Batch struct {
	primitives []Primitive
	index      map[ID]Target
	frame      uint64
	sorted     []Primitive
	dirty      bool
}

// New returns an empty batch.
func New() *Batch {
	return &Batch{index: make(map[ID]Target)}
}

// Reset discards every primitive and picking entry and starts a new frame.
func (b *Batch) Reset() {
	b.primitives = b.primitives[:0]
	for id := range b.index {
		delete(b.index, id)
	}
	b.sorted = b.sorted[:0]
	b.dirty = false
	b.frame++
}

// Frame returns the number of Reset calls so far.
func (b *Batch) Frame() uint64 {
	return b.frame
}

// Add appends p, shifted by zOffset, and registers its picking identifier for
// target. It returns the identifier stored with the primitive: NoID when p had
// none, when target is nil, or when the identifier was already issued this
// frame (the first registration wins). Degenerate primitives are dropped.
func (b *Batch) Add(p Primitive, zOffset float64, target Target) ID {
	if p.Degenerate() {
		return NoID
	}
	p.Z += zOffset
	if p.ID.Valid() {
		if target == nil {
			p.ID = NoID
		} else if _, taken := b.index[p.ID]; taken {
			p.ID = NoID
		} else {
			b.index[p.ID] = target
		}
	} else {
		p.ID = NoID
	}
	b.primitives = append(b.primitives, p)
	b.dirty = true
	return p.ID
}

// Len returns the number of primitives submitted this frame.
func (b *Batch) Len() int {
	return len(b.primitives)
}

// Primitives returns the primitives in submission order. The slice is only
// valid until the next Reset.
func (b *Batch) Primitives() []Primitive {
	return b.primitives
}

// Sorted returns the primitives in dispatch order: ascending Z, submission
// order within equal Z.
func (b *Batch) Sorted() []Primitive {
	if !b.dirty && len(b.sorted) == len(b.primitives) {
		return b.sorted
	}
	b.sorted = append(b.sorted[:0], b.primitives...)
	sort.SliceStable(b.sorted, func(i, j int) bool {
		return b.sorted[i].Z < b.sorted[j].Z
	})
	b.dirty = false
	return b.sorted
}

// Target resolves a picking identifier issued during the current frame.
func (b *Batch) Target(id ID) (Target, bool) {
	if !id.Valid() {
		return nil, false
	}
	t, ok := b.index[id]
	return t, ok
}

// IDs returns how many picking identifiers are registered this frame.
func (b *Batch) IDs() int {
	return len(b.index)
}
