package dispatcher

import (
	"github.com/atomicstack/timegraph/internal/backend"
	"github.com/atomicstack/timegraph/internal/logging/events"
	"github.com/atomicstack/timegraph/internal/state"
)

type Result struct {
	CaptureUpdated bool
	Err            error
}

// Dispatcher applies backend events to the stores.
type Dispatcher struct {
	captures  state.CaptureStore
	selection state.SelectionStore
}

func New(c state.CaptureStore, s state.SelectionStore) *Dispatcher {
	return &Dispatcher{captures: c, selection: s}
}

// Handle stores a new capture snapshot. Errors are reported, not applied; the
// previous snapshot stays on screen.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Capture.Error(evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindCapture:
		if evt.Data == nil {
			return res
		}
		if !d.captures.Set(evt.Data) {
			events.Capture.Unchanged(evt.Data.Version())
			return res
		}
		// sample indices address the previous snapshot
		if d.selection != nil {
			d.selection.SelectSamples(d.selection.SamplesThread(), nil)
		}
		min, max := evt.Data.Range()
		events.Capture.Reload(evt.Data.Version(), uint64(min), uint64(max))
		res.CaptureUpdated = true
	}
	return res
}
