package batch

import "fmt"

// Kind classifies which primitive family a picking identifier was issued for.
type Kind uint8

const (
	KindNone Kind = iota
	// KindElement identifies a whole view element (event bars, track tabs).
	KindElement
	// KindBox identifies one slice box inside a track.
	KindBox
	// KindLine identifies a line primitive such as a sample marker.
	KindLine
	// KindText identifies a text run.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindBox:
		return "box"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

// ID is a compact picking identifier. The layout, from most to least
// significant bits, is kind (8), element (24), sub-index (32), so ordering IDs
// numerically orders them by kind, then element, then sub-index.
type ID uint64

// NoID marks a primitive that does not take part in picking.
const NoID ID = 0

const (
	kindShift    = 56
	elementShift = 32
	elementMask  = 0xffffff
	indexMask    = 0xffffffff

	// MaxElement is the largest element identity an ID can embed.
	MaxElement = elementMask
)

// NewID packs a picking identifier. Element identities above MaxElement are
// truncated; the session never hands out that many.
func NewID(kind Kind, element uint32, index uint32) ID {
	if kind == KindNone {
		return NoID
	}
	return ID(uint64(kind)<<kindShift | uint64(element&elementMask)<<elementShift | uint64(index))
}

// Kind returns the primitive family.
func (id ID) Kind() Kind {
	return Kind(id >> kindShift)
}

// Element returns the embedded element identity.
func (id ID) Element() uint32 {
	return uint32(id>>elementShift) & elementMask
}

// Index returns the embedded sub-index, e.g. the record ordinal inside a track.
func (id ID) Index() uint32 {
	return uint32(uint64(id) & indexMask)
}

// Valid reports whether the identifier refers to anything.
func (id ID) Valid() bool {
	return id != NoID && id.Kind() != KindNone
}

func (id ID) String() string {
	if !id.Valid() {
		return "none"
	}
	return fmt.Sprintf("%s:%d:%d", id.Kind(), id.Element(), id.Index())
}
