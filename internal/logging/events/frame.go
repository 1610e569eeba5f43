package events

import "github.com/atomicstack/timegraph/internal/logging"

type FrameTracer struct{}

type ViewTracer struct{}

var (
	Frame = FrameTracer{}
	View  = ViewTracer{}
)

// Built is emitted once per frame; it is the hottest trace point.
func (FrameTracer) Built(mode string, min, max uint64, primitives, ids int) {
	logging.Trace("frame.built", map[string]any{
		"mode":       mode,
		"min":        min,
		"max":        max,
		"primitives": primitives,
		"ids":        ids,
	})
}

func (FrameTracer) Skipped(reason string) {
	logging.Trace("frame.skipped", map[string]any{"reason": reason})
}

func (ViewTracer) Zoom(factor float64, min, max uint64) {
	logging.Trace("view.zoom", map[string]any{"factor": factor, "min": min, "max": max})
}

func (ViewTracer) Pan(dx float64, min, max uint64) {
	logging.Trace("view.pan", map[string]any{"dx": dx, "min": min, "max": max})
}

func (ViewTracer) Fit(min, max uint64) {
	logging.Trace("view.fit", map[string]any{"min": min, "max": max})
}

func (ViewTracer) Scroll(offset float64) {
	logging.Trace("view.scroll", map[string]any{"offset": offset})
}

func (ViewTracer) Resize(width, height int) {
	logging.Trace("view.resize", map[string]any{"width": width, "height": height})
}
