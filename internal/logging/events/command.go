package events

import "github.com/atomicstack/treehouse/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Register(id string) {
	logging.Trace("command.register", map[string]interface{}{"id": id})
}

func (CommandTracer) Execute(id, nodeID string, args int) {
	logging.Trace("command.execute", map[string]interface{}{"id": id, "node": nodeID, "args": args})
}

func (CommandTracer) NotFound(id string) {
	logging.Trace("command.notfound", map[string]interface{}{"id": id})
}

func (CommandTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"id": id, "error": err.Error()})
}

func (CommandTracer) Stale(nodeID string) {
	logging.Trace("command.stale", map[string]interface{}{"node": nodeID})
}
