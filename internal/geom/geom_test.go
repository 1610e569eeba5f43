package geom

import "testing"

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := RectOf(10, 5, 4, 2)
	if !r.Contains(Vec2{X: 10, Y: 5}) {
		t.Fatalf("expected top-left corner inside")
	}
	if r.Contains(Vec2{X: 14, Y: 5}) || r.Contains(Vec2{X: 10, Y: 7}) {
		t.Fatalf("expected right and bottom edges outside")
	}
	if RectOf(0, 0, 0, 3).Contains(Vec2{}) {
		t.Fatalf("expected empty rect to contain nothing")
	}
}

func TestRectIntersects(t *testing.T) {
	a := RectOf(0, 0, 10, 1)
	if !a.Intersects(RectOf(9, 0, 5, 1)) {
		t.Fatalf("expected overlap")
	}
	if a.Intersects(RectOf(10, 0, 5, 1)) {
		t.Fatalf("expected touching rects not to overlap")
	}
}

func TestRectCellsCoversNarrowRect(t *testing.T) {
	x0, y0, x1, y1 := RectOf(3.2, 1, 0.1, 1).Cells()
	if x0 != 3 || x1 != 4 || y0 != 1 || y1 != 2 {
		t.Fatalf("expected single cell (3,1)-(4,2), got (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	x0, _, x1, _ = RectOf(2.5, 0, 2, 1).Cells()
	if x0 != 2 || x1 != 5 {
		t.Fatalf("expected columns [2,5), got [%d,%d)", x0, x1)
	}
}

func TestTranslate(t *testing.T) {
	r := RectOf(1, 2, 3, 4).Translate(Vec2{X: -1, Y: 3})
	if r.Pos != (Vec2{X: 0, Y: 5}) || r.Size != (Vec2{X: 3, Y: 4}) {
		t.Fatalf("unexpected translated rect %#v", r)
	}
}
