package state

import "github.com/atomicstack/timegraph/internal/capture"

// Item is one row of the track list.
type Item struct {
	Thread capture.ThreadID
	Label  string
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
