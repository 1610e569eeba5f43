package state

import "github.com/atomicstack/timegraph/internal/capture"

// List is the keyboard-facing view of the track order: the filtered items,
// the cursor and the viewport offset.
type List struct {
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List holding items.
func NewList(items []Item) *List {
	l := &List{Cursor: -1, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index of tid among the filtered items, or -1.
func (l *List) IndexOf(tid capture.ThreadID) int {
	for i, item := range l.Items {
		if item.Thread == tid {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the items. The cursor stays on the same thread when it
// survives the update.
func (l *List) UpdateItems(items []Item) {
	current, hadCurrent := l.Current()
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if hadCurrent {
		if idx := l.IndexOf(current.Thread); idx >= 0 {
			l.Cursor = idx
		}
	}
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
