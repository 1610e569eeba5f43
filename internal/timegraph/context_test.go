package timegraph

import "testing"

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c := New(DefaultLayout())
	c.SetViewport(121, 10)
	c.SetCaptureRange(0, 1000)
	if c.PlotWidth() != 100 {
		t.Fatalf("expected plot width 100, got %v", c.PlotWidth())
	}
	return c
}

func TestCaptureRangeStartsFitted(t *testing.T) {
	c := newTestContext(t)
	w := c.Transform().Window()
	if w.Min != 0 || w.Max != 1000 {
		t.Fatalf("expected [0,1000], got [%d,%d]", w.Min, w.Max)
	}
	if !c.Fitted() {
		t.Fatalf("expected fitted")
	}
}

func TestFittedWindowFollowsGrowth(t *testing.T) {
	c := newTestContext(t)
	c.SetCaptureRange(0, 2000)
	if w := c.Transform().Window(); w.Max != 2000 {
		t.Fatalf("expected window to follow growth, got max %d", w.Max)
	}
	c.ZoomIn(c.PlotLeft())
	span := c.Transform().Span()
	c.SetCaptureRange(0, 4000)
	if got := c.Transform().Span(); got != span {
		t.Fatalf("expected zoomed window to be kept, got span %d want %d", got, span)
	}
}

func TestZoomKeepsAnchor(t *testing.T) {
	c := newTestContext(t)
	anchor := c.PlotLeft() + 50
	before := c.Transform().TickAt(anchor)
	c.ZoomIn(anchor)
	tr := c.Transform()
	if tr.Span() >= 1000 {
		t.Fatalf("expected narrower window, got span %d", tr.Span())
	}
	after := tr.TickAt(anchor)
	if diff := int64(after) - int64(before); diff < -2 || diff > 2 {
		t.Fatalf("expected anchor to stay near %d, got %d", before, after)
	}
	c.ZoomOut(anchor)
	if !c.Fitted() {
		t.Fatalf("expected zoom out to return to the full range")
	}
}

func TestZoomClampsSpan(t *testing.T) {
	c := newTestContext(t)
	c.Zoom(1e9, c.PlotLeft())
	if got := c.Transform().Span(); got != 10 {
		t.Fatalf("expected minimum span 10, got %d", got)
	}
	c.Zoom(1e-9, c.PlotLeft())
	if got := c.Transform().Span(); got != 1000 {
		t.Fatalf("expected maximum span 1000, got %d", got)
	}
	c.Zoom(-1, c.PlotLeft())
	if got := c.Transform().Span(); got != 1000 {
		t.Fatalf("expected invalid factor to be ignored, got %d", got)
	}
}

func TestPanClampsToCapture(t *testing.T) {
	c := newTestContext(t)
	c.SetWindow(100, 300)
	c.Pan(10)
	if w := c.Transform().Window(); w.Min != 120 {
		t.Fatalf("expected origin 120 after panning 10px, got %d", w.Min)
	}
	c.Pan(-1e6)
	if w := c.Transform().Window(); w.Min != 0 {
		t.Fatalf("expected origin clamped to 0, got %d", w.Min)
	}
	c.Pan(1e6)
	if w := c.Transform().Window(); w.Max != 1000 || w.Min != 800 {
		t.Fatalf("expected window clamped to [800,1000], got [%d,%d]", w.Min, w.Max)
	}
}

func TestSetWindowRejectsEmpty(t *testing.T) {
	c := newTestContext(t)
	if c.SetWindow(5, 5) {
		t.Fatalf("expected empty window to be rejected")
	}
	if !c.SetWindow(900, 5000) {
		t.Fatalf("expected window to be accepted")
	}
	if w := c.Transform().Window(); w.Max != 1000 {
		t.Fatalf("expected window clamped to capture end, got %d", w.Max)
	}
}

func TestInstantCaptureHasWindow(t *testing.T) {
	c := New(DefaultLayout())
	c.SetViewport(121, 10)
	c.SetCaptureRange(500, 500)
	tr := c.Transform()
	if !tr.Valid() || tr.Span() == 0 {
		t.Fatalf("expected a non-empty window, got %#v", tr)
	}
}
