package ui

import (
	"testing"

	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/geom"
)

var (
	black = geom.RGBA(0, 0, 0, 255)
	white = geom.RGBA(255, 255, 255, 255)
)

func TestPaintCompositesInOrder(t *testing.T) {
	g := newGrid(4, 1, black)
	g.paint([]batch.Primitive{
		batch.Box(geom.RectOf(0, 0, 4, 1), batch.ZTrack, white, batch.NoID),
		batch.Box(geom.RectOf(2, 0, 2, 1), batch.ZBox, geom.RGBA(0, 0, 0, 128), batch.NoID),
		batch.Box(geom.RectOf(3, 0, 1, 1), batch.ZEvent, geom.Transparent, batch.NoID),
	})
	if g.at(0, 0).bg != white {
		t.Fatalf("expected opaque box to replace background, got %v", g.at(0, 0).bg)
	}
	mid := g.at(2, 0).bg
	if mid == white || mid == black || !mid.Opaque() {
		t.Fatalf("expected translucent box to blend, got %v", mid)
	}
	if g.at(3, 0).bg != mid {
		t.Fatalf("expected invisible primitive to be skipped")
	}
}

func TestTextKeepsBackgroundAndWideRunes(t *testing.T) {
	g := newGrid(6, 1, black)
	g.paint([]batch.Primitive{batch.Box(geom.RectOf(0, 0, 6, 1), batch.ZTrack, white, batch.NoID)})
	g.text(1, 0, "日x", black)
	if got := g.plain()[0]; got != " 日x  " {
		t.Fatalf("expected wide rune to take two cells, got %q", got)
	}
	if g.at(1, 0).bg != white {
		t.Fatalf("expected text to keep the cell background")
	}
	g.text(5, 0, "日", black)
	if g.at(5, 0).ch != " " {
		t.Fatalf("expected clipped wide rune not to be drawn")
	}
}

func TestBoxDrawsLines(t *testing.T) {
	g := newGrid(10, 3, black)
	g.box(1, 1, 5, 2, []string{"ab", "cd", "ef"}, white, black)
	lines := g.plain()
	if lines[1] != "  ab      " || lines[2] != "  cd      " {
		t.Fatalf("unexpected box rows %q", lines)
	}
}

func TestRenderKeepsWidth(t *testing.T) {
	g := newGrid(5, 2, black)
	g.text(0, 0, "hello", white)
	rendered := g.render()
	if len(rendered) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(rendered))
	}
	if g.plain()[0] != "hello" {
		t.Fatalf("unexpected text %q", g.plain()[0])
	}
}
