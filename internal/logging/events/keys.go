package events

import "github.com/atomicstack/treehouse/internal/logging"

type KeysTracer struct{}

var Keys = KeysTracer{}

func (KeysTracer) Match(key, chord, command string) {
	logging.Trace("keys.match", map[string]interface{}{"key": key, "chord": chord, "command": command})
}

// Unrouted records a binding that matched while nothing had focus.
func (KeysTracer) Unrouted(key, command string) {
	logging.Trace("keys.unrouted", map[string]interface{}{"key": key, "command": command})
}

func (KeysTracer) Keymap(path string, count int) {
	logging.Trace("keys.keymap", map[string]interface{}{"path": path, "bindings": count})
}
