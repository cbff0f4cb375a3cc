package events

import "github.com/atomicstack/wallpicker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(path string) {
	logging.Trace("app.quit", map[string]interface{}{"path": path})
}
