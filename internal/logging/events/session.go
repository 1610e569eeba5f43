package events

import "github.com/atomicstack/timegraph/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Open(id string) {
	logging.Trace("session.open", map[string]any{"session": id})
}

func (SessionTracer) DataChanged(id string, version uint64, tracks int) {
	logging.Trace("session.data-changed", map[string]any{"session": id, "version": version, "tracks": tracks})
}

func (SessionTracer) Close(id string) {
	logging.Trace("session.close", map[string]any{"session": id})
}
