package events

import "github.com/atomicstack/timegraph/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]any{"key": key})
}

func (UITracer) Mouse(action, button string, x, y int) {
	logging.Trace("ui.mouse", map[string]any{"action": action, "button": button, "x": x, "y": y})
}

func (UITracer) Tooltip(x, y int, lines int) {
	logging.Trace("ui.tooltip", map[string]any{"x": x, "y": y, "lines": lines})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]any{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]any{"info": info})
}

func (FilterTracer) Start() {
	logging.Trace("filter.start", nil)
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.change", map[string]any{"query": query, "matches": matches})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]any{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]any{"id": id, "label": label, "msg": msgType})
}

func (UITracer) Accessibility(nodes int, outline string) {
	logging.Trace("ui.accessibility", map[string]any{"nodes": nodes, "outline": outline})
}
