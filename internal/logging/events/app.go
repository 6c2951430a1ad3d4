package events

import "github.com/atomicstack/forge/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) RepositoryOpened(path, branch string) {
	logging.Trace("app.repository", map[string]interface{}{
		"path":   path,
		"branch": branch,
	})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
