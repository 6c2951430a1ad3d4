package events

import "github.com/atomicstack/forge/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type AsyncTracer struct{}

type GitTracer struct{}

var (
	UI     = UITracer{}
	Action = ActionTracer{}
	Async  = AsyncTracer{}
	Git    = GitTracer{}
)

func (UITracer) ViewChange(from, to string) {
	logging.Trace("ui.view", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) FocusChange(focus string) {
	logging.Trace("ui.focus", map[string]interface{}{"focus": focus})
}

func (UITracer) MenuCursor(index int) {
	logging.Trace("ui.menu-cursor", map[string]interface{}{"index": index})
}

func (UITracer) Status(message string) {
	logging.Trace("ui.status", map[string]interface{}{"message": message})
}

func (ActionTracer) Mapped(key, action string) {
	logging.Trace("action.mapped", map[string]interface{}{"key": key, "action": action})
}

func (ActionTracer) Rejected(action, reason string) {
	logging.Trace("action.rejected", map[string]interface{}{"action": action, "reason": reason})
}

func (ActionTracer) Intent(intent string) {
	logging.Trace("action.intent", map[string]interface{}{"intent": intent})
}

func (AsyncTracer) Start(kind string) {
	logging.Trace("async.start", map[string]interface{}{"kind": kind})
}

func (AsyncTracer) Progress(kind string, percent int, phase string) {
	logging.Trace("async.progress", map[string]interface{}{
		"kind":    kind,
		"percent": percent,
		"phase":   phase,
	})
}

func (AsyncTracer) CancelRequested(kind string) {
	logging.Trace("async.cancel", map[string]interface{}{"kind": kind})
}

func (AsyncTracer) Done(kind, status, message string) {
	logging.Trace("async.done", map[string]interface{}{
		"kind":    kind,
		"status":  status,
		"message": message,
	})
}

func (GitTracer) Call(op string) {
	logging.Trace("git.call", map[string]interface{}{"op": op})
}

func (GitTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("git.error", map[string]interface{}{"op": op, "error": err.Error()})
}
