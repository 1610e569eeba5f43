package geom

import "math"

// Vec2 is a point or extent in timeline pixel space. X grows to the right and
// Y grows downwards.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis aligned rectangle anchored at its top-left corner.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// RectOf builds a rectangle from a position and size.
func RectOf(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return !(r.Size.X > 0) || !(r.Size.Y > 0)
}

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Contains reports whether p lies inside the half-open rectangle.
func (r Rect) Contains(p Vec2) bool {
	if r.Empty() {
		return false
	}
	max := r.Max()
	return p.X >= r.Pos.X && p.X < max.X && p.Y >= r.Pos.Y && p.Y < max.Y
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	rm, om := r.Max(), o.Max()
	return r.Pos.X < om.X && o.Pos.X < rm.X && r.Pos.Y < om.Y && o.Pos.Y < rm.Y
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}

// Cells returns the integer cell span [x0,x1)x[y0,y1) covered by the rectangle
// on a unit grid. A non-empty rectangle narrower than a cell still covers the
// cell holding its origin.
func (r Rect) Cells() (x0, y0, x1, y1 int) {
	if r.Empty() {
		return 0, 0, 0, 0
	}
	max := r.Max()
	x0 = int(math.Floor(r.Pos.X))
	y0 = int(math.Floor(r.Pos.Y))
	x1 = int(math.Ceil(max.X))
	y1 = int(math.Ceil(max.Y))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}
