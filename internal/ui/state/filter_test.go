package state

import (
	"reflect"
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestList("one", "two", "three")
	l.Cursor = 2
	l.SetFilter("two")

	if l.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", l.Filter)
	}
	if len(l.Items) != 1 || l.Items[0].Label != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", l.Items)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", l.Cursor)
	}

	l.SetFilter("")
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", l.LastCursor)
	}
}

func TestFilterItemsFuzzy(t *testing.T) {
	items := []Item{{Thread: 1, Label: "render-thread [1]"}, {Thread: 2, Label: "audio [2]"}}
	filtered := FilterItems(items, "rndr")
	if len(filtered) != 1 || filtered[0].Thread != 1 {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "AUDIO")
	if len(filtered) != 1 || filtered[0].Thread != 2 {
		t.Fatalf("expected case-insensitive match, got %#v", filtered)
	}
	if len(FilterItems(items, "zzz")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	if got := FilterItems(items, "  "); !reflect.DeepEqual(got, items) {
		t.Fatalf("expected blank query to keep everything, got %#v", got)
	}
}

func TestFilterItemsDoesNotAlias(t *testing.T) {
	items := []Item{{Thread: 1, Label: "Alpha"}}
	filtered := FilterItems(items, "")
	filtered[0].Label = "changed"
	if items[0].Label != "Alpha" {
		t.Fatal("expected original slice to remain unchanged")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Item{{Label: "First"}, {Label: "Second"}, {Label: "Third"}}

	if idx := BestMatchIndex(items, "second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestMatches(t *testing.T) {
	if !Matches("", "anything") {
		t.Fatal("expected empty query to match")
	}
	if !Matches("wk3", "worker-3 [103]") {
		t.Fatal("expected fuzzy match")
	}
	if Matches("xyz", "worker-3 [103]") {
		t.Fatal("expected mismatch")
	}
}
