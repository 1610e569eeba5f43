package timegraph

import (
	"math"

	"github.com/atomicstack/timegraph/internal/capture"
)

// Context owns the navigation state of the time graph: the capture range, the
// viewport size and the visible window. Tracks never read it directly; they
// receive the Transform snapshot taken at the start of each frame.
type Context struct {
	layout Layout

	width  float64
	height float64

	captureMin capture.Tick
	captureMax capture.Tick

	origin capture.Tick
	span   capture.Tick
}

// New returns a context with an empty capture range.
func New(layout Layout) *Context {
	return &Context{layout: layout}
}

// Layout returns the layout constants.
func (c *Context) Layout() Layout {
	return c.layout
}

// SetViewport updates the canvas size in pixels.
func (c *Context) SetViewport(width, height float64) {
	c.width = math.Max(width, 0)
	c.height = math.Max(height, 0)
}

// Viewport returns the canvas size.
func (c *Context) Viewport() (float64, float64) {
	return c.width, c.height
}

// PlotLeft is the x coordinate of the first data column.
func (c *Context) PlotLeft() float64 {
	return c.layout.TrackTabWidth
}

// PlotWidth is the number of pixels available to data.
func (c *Context) PlotWidth() float64 {
	return math.Max(c.width-c.layout.TrackTabWidth-c.layout.RightMargin, 0)
}

// SetCaptureRange installs the navigable range. While the whole capture is
// visible the window follows the new range; otherwise the current window is
// kept, clamped into the new range.
func (c *Context) SetCaptureRange(min, max capture.Tick) {
	if max < min {
		min, max = max, min
	}
	fit := c.span == 0 || c.Fitted()
	c.captureMin, c.captureMax = min, max
	if fit {
		c.ZoomToFit()
		return
	}
	c.clamp()
}

// CaptureRange returns the navigable range.
func (c *Context) CaptureRange() (capture.Tick, capture.Tick) {
	return c.captureMin, c.captureMax
}

// Fitted reports whether the window shows the whole capture.
func (c *Context) Fitted() bool {
	return c.origin == c.captureMin && c.origin+c.span >= c.captureMax
}

// ZoomToFit shows the whole capture.
func (c *Context) ZoomToFit() {
	c.origin = c.captureMin
	c.span = c.captureMax - c.captureMin
	c.clamp()
}

// SetWindow shows [min, max]. Empty or inverted windows are ignored and
// reported as false.
func (c *Context) SetWindow(min, max capture.Tick) bool {
	if max <= min {
		return false
	}
	c.origin = min
	c.span = max - min
	c.clamp()
	return true
}

// Zoom scales the window by factor around the tick under anchorX. Factors
// above one zoom in.
func (c *Context) Zoom(factor, anchorX float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	t := c.Transform()
	if !t.Valid() {
		return
	}
	anchor := t.TickAt(anchorX)
	ratio := 0.0
	if t.Width > 0 {
		ratio = (anchorX - t.Left) / t.Width
	}
	ratio = math.Min(math.Max(ratio, 0), 1)

	span := float64(c.span) / factor
	c.span = capture.Tick(math.Max(math.Round(span), 1))
	offset := capture.Tick(math.Round(ratio * float64(c.span)))
	if offset > anchor {
		c.origin = 0
	} else {
		c.origin = anchor - offset
	}
	c.clamp()
}

// ZoomIn zooms by the layout step around anchorX.
func (c *Context) ZoomIn(anchorX float64) {
	c.Zoom(c.layout.ZoomStep, anchorX)
}

// ZoomOut zooms out by the layout step around anchorX.
func (c *Context) ZoomOut(anchorX float64) {
	c.Zoom(1/c.layout.ZoomStep, anchorX)
}

// Pan moves the window by dx pixels. Positive values reveal later ticks.
func (c *Context) Pan(dx float64) {
	t := c.Transform()
	if !t.Valid() || dx == 0 {
		return
	}
	ticks := math.Round(math.Abs(dx) / t.Scale)
	delta := capture.Tick(ticks)
	if dx > 0 {
		c.origin += delta
	} else if delta > c.origin {
		c.origin = 0
	} else {
		c.origin -= delta
	}
	c.clamp()
}

// Transform returns the frame-constant mapping for the current state.
func (c *Context) Transform() Transform {
	width := c.PlotWidth()
	t := Transform{Origin: c.origin, Left: c.PlotLeft(), Width: width}
	if c.span > 0 && width > 0 {
		t.Scale = width / float64(c.span)
	}
	return t
}

func (c *Context) clamp() {
	full := c.captureMax - c.captureMin
	minSpan := capture.Tick(c.layout.MinVisibleTicks)
	if minSpan == 0 {
		minSpan = 1
	}
	if full > 0 && minSpan > full {
		minSpan = full
	}
	if full == 0 {
		// a single-instant capture still needs a non-empty window
		full = minSpan
	}
	if c.span < minSpan {
		c.span = minSpan
	}
	if c.span > full {
		c.span = full
	}
	if c.origin < c.captureMin {
		c.origin = c.captureMin
	}
	if c.origin+c.span > c.captureMin+full {
		c.origin = c.captureMin + full - c.span
	}
}
