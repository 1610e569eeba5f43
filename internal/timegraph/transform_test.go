package timegraph

import "testing"

func TestTransformMapsTicksToPixels(t *testing.T) {
	tr := Transform{Origin: 1000, Scale: 0.5, Left: 20, Width: 100}
	if got := tr.Pixel(1000); got != 20 {
		t.Fatalf("expected origin at left edge, got %v", got)
	}
	if got := tr.Pixel(1100); got != 70 {
		t.Fatalf("expected 70, got %v", got)
	}
	if got := tr.TickAt(70); got != 1100 {
		t.Fatalf("expected tick 1100, got %d", got)
	}
	if got := tr.PixelWidth(10); got != 5 {
		t.Fatalf("expected width 5, got %v", got)
	}
	w := tr.Window()
	if w.Min != 1000 || w.Max != 1200 || w.Width != 100 {
		t.Fatalf("unexpected window %#v", w)
	}
}

func TestTransformColumns(t *testing.T) {
	tr := Transform{Origin: 1000, Scale: 0.5, Left: 0, Width: 100}
	if got := tr.TicksPerPixel(); got != 2 {
		t.Fatalf("expected 2 ticks per pixel, got %d", got)
	}
	if got := tr.ColumnEnd(1003); got != 1004 {
		t.Fatalf("expected column end 1004, got %d", got)
	}
	if got := tr.ColumnEnd(500); got != 1002 {
		t.Fatalf("expected ticks before origin to use the first column, got %d", got)
	}
	fine := Transform{Origin: 0, Scale: 4, Width: 10}
	if fine.TicksPerPixel() != 0 || fine.ColumnEnd(7) != 7 {
		t.Fatalf("expected no columns when a pixel is finer than a tick")
	}
}

func TestInvalidTransform(t *testing.T) {
	tr := Transform{Origin: 5}
	if tr.Valid() {
		t.Fatalf("expected zero scale to be invalid")
	}
	if tr.Span() != 0 || tr.TickAt(100) != 5 {
		t.Fatalf("expected invalid transform to map everything to origin")
	}
	if tr.Window().Valid() {
		t.Fatalf("expected empty window to be invalid")
	}
}
