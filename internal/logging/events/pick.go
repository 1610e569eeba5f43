package events

import "github.com/atomicstack/timegraph/internal/logging"

type PickTracer struct{}

type TrackTracer struct{}

type CaptureTracer struct{}

var (
	Pick    = PickTracer{}
	Track   = TrackTracer{}
	Capture = CaptureTracer{}
)

func (PickTracer) Resolved(mode string, x, y float64, element uint32, id string) {
	logging.Trace("pick.resolved", map[string]any{"mode": mode, "x": x, "y": y, "element": element, "id": id})
}

func (PickTracer) Miss(x, y float64) {
	logging.Trace("pick.miss", map[string]any{"x": x, "y": y})
}

func (PickTracer) Release(element uint32) {
	logging.Trace("pick.release", map[string]any{"element": element})
}

func (TrackTracer) Drag(element uint32, x, y float64) {
	logging.Trace("track.drag", map[string]any{"element": element, "x": x, "y": y})
}

func (TrackTracer) Reorder(order []int32) {
	logging.Trace("track.reorder", map[string]any{"order": order})
}

func (TrackTracer) SelectThread(tid int32) {
	logging.Trace("track.select-thread", map[string]any{"thread": tid})
}

func (TrackTracer) SelectSamples(tid int32, count int) {
	logging.Trace("track.select-samples", map[string]any{"thread": tid, "count": count})
}

func (CaptureTracer) Reload(version uint64, min, max uint64) {
	logging.Trace("capture.reload", map[string]any{"version": version, "min": min, "max": max})
}

func (CaptureTracer) Unchanged(version uint64) {
	logging.Trace("capture.unchanged", map[string]any{"version": version})
}

func (CaptureTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("capture.error", map[string]any{"error": err.Error()})
}
