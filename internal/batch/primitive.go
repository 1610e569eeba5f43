package batch

import (
	"math"

	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/charmbracelet/x/ansi"
)

// Shape is the drawable kind of a primitive.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeLine
	ShapeText
)

// Z values used by the timeline. Higher values draw on top.
const (
	ZTrack           = 0.10
	ZEventBar        = 0.20
	ZBox             = 0.30
	ZEvent           = 0.40
	ZEventBarPicking = 0.50
	ZText            = 0.60
	ZUI              = 0.70
	ZTrackTab        = 0.80
	ZTrackTabText    = 0.90
)

// Primitive is one frame-scoped drawable unit.
type Primitive struct {
	Shape Shape
	// Rect is the box extent, the line bounding box or the text anchor and
	// measured extent.
	Rect  geom.Rect
	From  geom.Vec2
	To    geom.Vec2
	Text  string
	Color geom.Color
	Z     float64
	ID    ID
}

// Box builds a box primitive.
func Box(rect geom.Rect, z float64, color geom.Color, id ID) Primitive {
	return Primitive{Shape: ShapeBox, Rect: rect, Color: color, Z: z, ID: id}
}

// Line builds a line primitive between two points.
func Line(from, to geom.Vec2, z float64, color geom.Color, id ID) Primitive {
	x0, x1 := math.Min(from.X, to.X), math.Max(from.X, to.X)
	y0, y1 := math.Min(from.Y, to.Y), math.Max(from.Y, to.Y)
	rect := geom.RectOf(x0, y0, math.Max(x1-x0, 1), math.Max(y1-y0, 1))
	return Primitive{Shape: ShapeLine, Rect: rect, From: from, To: to, Color: color, Z: z, ID: id}
}

// VerticalLine builds a line from pos spanning height pixels downwards.
func VerticalLine(pos geom.Vec2, height float64, z float64, color geom.Color, id ID) Primitive {
	return Line(pos, geom.Vec2{X: pos.X, Y: pos.Y + height}, z, color, id)
}

// Text builds a text run anchored at pos. The extent is the display width of
// the text, one row high.
func Text(pos geom.Vec2, text string, z float64, color geom.Color, id ID) Primitive {
	w := float64(ansi.StringWidth(text))
	return Primitive{Shape: ShapeText, Rect: geom.Rect{Pos: pos, Size: geom.Vec2{X: w, Y: 1}}, Text: text, Color: color, Z: z, ID: id}
}

// Degenerate reports whether the primitive would draw nothing.
func (p Primitive) Degenerate() bool {
	switch p.Shape {
	case ShapeText:
		return p.Text == ""
	case ShapeLine:
		return math.IsNaN(p.From.X) || math.IsNaN(p.To.X)
	default:
		return p.Rect.Empty()
	}
}

// Cover calls fn for every grid cell the primitive covers, clipped to
// [0,width)x[0,height).
func (p Primitive) Cover(width, height int, fn func(x, y int)) {
	if p.Degenerate() || width <= 0 || height <= 0 {
		return
	}
	if p.Shape == ShapeLine {
		p.coverLine(width, height, fn)
		return
	}
	x0, y0, x1, y1 := p.Rect.Cells()
	x0, x1 = clamp(x0, 0, width), clamp(x1, 0, width)
	y0, y1 = clamp(y0, 0, height), clamp(y1, 0, height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fn(x, y)
		}
	}
}

// coverLine walks the line with a DDA, visiting each cell once.
func (p Primitive) coverLine(width, height int, fn func(x, y int)) {
	fx, fy := math.Floor(p.From.X), math.Floor(p.From.Y)
	tx, ty := math.Floor(p.To.X), math.Floor(p.To.Y)
	// Lines are half-open like boxes: a vertical line of height h covers h rows.
	if fx == tx && ty > fy {
		ty--
	} else if fy == ty && tx > fx {
		tx--
	}
	dx, dy := tx-fx, ty-fy
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		visit(int(fx), int(fy), width, height, fn)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	x, y := fx, fy
	for i := 0; i <= steps; i++ {
		visit(int(math.Round(x)), int(math.Round(y)), width, height, fn)
		x += sx
		y += sy
	}
}

func visit(x, y, width, height int, fn func(x, y int)) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	fn(x, y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
