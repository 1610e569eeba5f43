package batch

import (
	"testing"

	"github.com/atomicstack/timegraph/internal/geom"
)

type target uint32

func (t target) ElementID() uint32 { return uint32(t) }

var white = geom.RGBA(255, 255, 255, 255)

func TestIDRoundTrip(t *testing.T) {
	id := NewID(KindBox, 0x123456, 0xdeadbeef)
	if id.Kind() != KindBox || id.Element() != 0x123456 || id.Index() != 0xdeadbeef {
		t.Fatalf("unexpected fields in %s", id)
	}
	if NewID(KindNone, 1, 1) != NoID {
		t.Fatalf("expected KindNone to produce NoID")
	}
	if NewID(KindElement, 1, 0).String() != "element:1:0" {
		t.Fatalf("unexpected string %q", NewID(KindElement, 1, 0).String())
	}
}

func TestIDOrdersByKindThenElement(t *testing.T) {
	if !(NewID(KindElement, 9, 9) < NewID(KindBox, 0, 0)) {
		t.Fatalf("expected kind to dominate ordering")
	}
	if !(NewID(KindBox, 1, 0xffffffff) < NewID(KindBox, 2, 0)) {
		t.Fatalf("expected element to dominate index")
	}
}

func TestAddRegistersFirstTargetOnly(t *testing.T) {
	b := New()
	id := NewID(KindBox, 1, 0)
	if got := b.Add(Box(geom.RectOf(0, 0, 1, 1), ZBox, white, id), 0, target(1)); got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
	if got := b.Add(Box(geom.RectOf(1, 0, 1, 1), ZBox, white, id), 0, target(2)); got != NoID {
		t.Fatalf("expected duplicate to be dropped from picking, got %s", got)
	}
	tg, ok := b.Target(id)
	if !ok || tg.ElementID() != 1 {
		t.Fatalf("expected first target to win, got %v", tg)
	}
	if b.Len() != 2 || b.IDs() != 1 {
		t.Fatalf("expected 2 primitives and 1 id, got %d and %d", b.Len(), b.IDs())
	}
}

func TestAddWithoutTargetIsNotPickable(t *testing.T) {
	b := New()
	if got := b.Add(Box(geom.RectOf(0, 0, 1, 1), ZBox, white, NewID(KindBox, 1, 0)), 0, nil); got != NoID {
		t.Fatalf("expected NoID, got %s", got)
	}
	if b.IDs() != 0 {
		t.Fatalf("expected no registered ids")
	}
}

func TestAddDropsDegenerate(t *testing.T) {
	b := New()
	b.Add(Box(geom.RectOf(0, 0, 0, 1), ZBox, white, NoID), 0, nil)
	b.Add(Text(geom.Vec2{}, "", ZText, white, NoID), 0, nil)
	if b.Len() != 0 {
		t.Fatalf("expected degenerate primitives to be dropped, got %d", b.Len())
	}
}

func TestSortedIsStableByZ(t *testing.T) {
	b := New()
	b.Add(Text(geom.Vec2{}, "a", ZText, white, NoID), 0, nil)
	b.Add(Box(geom.RectOf(0, 0, 1, 1), ZBox, white, NoID), 0, nil)
	b.Add(Text(geom.Vec2{}, "b", ZText, white, NoID), 0, nil)
	b.Add(Box(geom.RectOf(0, 0, 1, 1), ZTrack, white, NoID), 1, nil)
	got := b.Sorted()
	if got[0].Shape != ShapeBox || got[0].Z != ZBox {
		t.Fatalf("expected box first, got %#v", got[0])
	}
	if got[1].Text != "a" || got[2].Text != "b" {
		t.Fatalf("expected submission order within equal z, got %q then %q", got[1].Text, got[2].Text)
	}
	if got[3].Z != ZTrack+1 {
		t.Fatalf("expected z offset applied, got %v", got[3].Z)
	}
}

func TestResetClearsFrame(t *testing.T) {
	b := New()
	id := NewID(KindElement, 3, 0)
	b.Add(Box(geom.RectOf(0, 0, 1, 1), ZBox, white, id), 0, target(3))
	frame := b.Frame()
	b.Reset()
	if b.Len() != 0 || b.IDs() != 0 || len(b.Sorted()) != 0 {
		t.Fatalf("expected empty batch after reset")
	}
	if _, ok := b.Target(id); ok {
		t.Fatalf("expected id from previous frame to be gone")
	}
	if b.Frame() != frame+1 {
		t.Fatalf("expected frame counter to advance")
	}
}

func TestPickBufferTopmostWins(t *testing.T) {
	b := New()
	low := NewID(KindBox, 1, 0)
	high := NewID(KindElement, 2, 0)
	b.Add(Box(geom.RectOf(0, 0, 4, 1), ZEventBarPicking, geom.Transparent, high), 0, target(2))
	b.Add(Box(geom.RectOf(0, 0, 10, 1), ZBox, white, low), 0, target(1))
	b.Add(Box(geom.RectOf(0, 0, 10, 1), ZText, white, NoID), 0, nil)

	pb := NewPickBuffer(0, 0)
	pb.Rasterize(b, 10, 2)
	if got := pb.At(2, 0); got != high {
		t.Fatalf("expected %s at (2,0), got %s", high, got)
	}
	if got := pb.At(6, 0); got != low {
		t.Fatalf("expected %s at (6,0), got %s", low, got)
	}
	if got := pb.At(6, 1); got != NoID {
		t.Fatalf("expected empty row, got %s", got)
	}
	if got := pb.At(-1, 0); got != NoID {
		t.Fatalf("expected out of range to be NoID, got %s", got)
	}
	if pb.Frame() != b.Frame() {
		t.Fatalf("expected buffer frame %d, got %d", b.Frame(), pb.Frame())
	}
}

func TestPickBufferClearsOnResize(t *testing.T) {
	b := New()
	b.Add(Box(geom.RectOf(0, 0, 2, 2), ZBox, white, NewID(KindBox, 1, 0)), 0, target(1))
	pb := NewPickBuffer(4, 4)
	pb.Rasterize(b, 4, 4)
	b.Reset()
	pb.Rasterize(b, 3, 3)
	if w, h := pb.Size(); w != 3 || h != 3 {
		t.Fatalf("expected 3x3, got %dx%d", w, h)
	}
	if pb.At(0, 0) != NoID {
		t.Fatalf("expected stale id to be cleared")
	}
}

func TestVerticalLineCoversHeightRows(t *testing.T) {
	p := VerticalLine(geom.Vec2{X: 2, Y: 1}, 3, ZEvent, white, NoID)
	var rows []int
	p.Cover(10, 10, func(x, y int) {
		if x != 2 {
			t.Fatalf("expected column 2, got %d", x)
		}
		rows = append(rows, y)
	})
	if len(rows) != 3 || rows[0] != 1 || rows[2] != 3 {
		t.Fatalf("expected rows 1..3, got %v", rows)
	}
}

func TestTextExtentUsesDisplayWidth(t *testing.T) {
	p := Text(geom.Vec2{}, "日本", ZText, white, NoID)
	if p.Rect.Size.X != 4 {
		t.Fatalf("expected width 4, got %v", p.Rect.Size.X)
	}
}
