package timegraph

import (
	"math"

	"github.com/atomicstack/timegraph/internal/capture"
)

// Window is the visible tick range of one frame plus its plot width.
type Window struct {
	Min   capture.Tick
	Max   capture.Tick
	Width float64
}

// Valid reports whether the window can be rendered. Zero-width windows are
// rejected.
func (w Window) Valid() bool {
	return w.Min <= w.Max && w.Width > 0 && w.Max > w.Min
}

// Transform is the frame-constant tick to pixel mapping:
//
//	pixel = (tick - Origin) * Scale + Left
//
// It is a value: every track of a frame reads the same copy.
type Transform struct {
	Origin capture.Tick
	Scale  float64
	Left   float64
	Width  float64
}

// Valid reports whether the transform maps a non-empty tick range onto a
// non-empty plot.
func (t Transform) Valid() bool {
	return t.Scale > 0 && t.Width > 0 && !math.IsInf(t.Scale, 0) && !math.IsNaN(t.Scale)
}

// Pixel maps a tick to an x coordinate.
func (t Transform) Pixel(tick capture.Tick) float64 {
	return (float64(tick)-float64(t.Origin))*t.Scale + t.Left
}

// PixelWidth maps a duration to a width in pixels.
func (t Transform) PixelWidth(d capture.Tick) float64 {
	return float64(d) * t.Scale
}

// TickAt maps an x coordinate back to a tick, clamped at zero.
func (t Transform) TickAt(x float64) capture.Tick {
	if !t.Valid() {
		return t.Origin
	}
	v := float64(t.Origin) + (x-t.Left)/t.Scale
	if v <= 0 {
		return 0
	}
	return capture.Tick(math.Round(v))
}

// Span returns the number of visible ticks.
func (t Transform) Span() capture.Tick {
	if !t.Valid() {
		return 0
	}
	return capture.Tick(math.Round(t.Width / t.Scale))
}

// Window returns the visible tick window.
func (t Transform) Window() Window {
	if !t.Valid() {
		return Window{Min: t.Origin, Max: t.Origin}
	}
	return Window{Min: t.Origin, Max: t.Origin + t.Span(), Width: t.Width}
}

// TicksPerPixel returns how many ticks one pixel column covers, rounded down.
// Zero means a pixel is finer than a tick.
func (t Transform) TicksPerPixel() capture.Tick {
	if !t.Valid() {
		return 0
	}
	return capture.Tick(math.Floor(1 / t.Scale))
}

// ColumnEnd returns the first tick after the pixel column that contains tick.
// Columns are aligned to Origin; ticks before Origin belong to the first
// column.
func (t Transform) ColumnEnd(tick capture.Tick) capture.Tick {
	delta := t.TicksPerPixel()
	if delta == 0 {
		return tick
	}
	if tick < t.Origin {
		tick = t.Origin
	}
	return t.Origin + (tick-t.Origin)/delta*delta + delta
}
