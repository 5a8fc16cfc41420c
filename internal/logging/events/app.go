package events

import "github.com/atomicstack/treehouse/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Initialized(nodes int) {
	logging.Trace("app.initialized", map[string]interface{}{"nodes": nodes})
}
