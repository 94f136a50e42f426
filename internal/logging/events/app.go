package events

import "github.com/atomicstack/hn-tui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(reason string) {
	logging.Trace("app.quit", map[string]interface{}{"reason": reason})
}
