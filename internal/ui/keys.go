package ui

import (
	"strings"

	"github.com/atomicstack/treehouse/internal/keybind"
	tea "github.com/charmbracelet/bubbletea"
)

var keyNames = map[string]string{
	"up":    "arrowup",
	"down":  "arrowdown",
	"left":  "arrowleft",
	"right": "arrowright",
	"esc":   "escape",
	" ":     "space",
}

// KeyEvent translates a terminal key press into a keybind event. Modifier
// prefixes reported by Bubble Tea (ctrl+, alt+, shift+) become flags; arrow
// keys are named arrowup, arrowdown and so on. Printable runes keep their
// text, so "K" stays "K".
func KeyEvent(msg tea.KeyMsg) keybind.Event {
	if msg.Type == tea.KeyRunes {
		return keybind.Event{Key: string(msg.Runes), Alt: msg.Alt}
	}
	ev := keybind.Event{}
	name := msg.String()
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+") && len(name) > len("ctrl+"):
			ev.Ctrl = true
			name = strings.TrimPrefix(name, "ctrl+")
			continue
		case strings.HasPrefix(name, "alt+") && len(name) > len("alt+"):
			ev.Alt = true
			name = strings.TrimPrefix(name, "alt+")
			continue
		case strings.HasPrefix(name, "shift+") && len(name) > len("shift+"):
			ev.Shift = true
			name = strings.TrimPrefix(name, "shift+")
			continue
		}
		break
	}
	if mapped, ok := keyNames[name]; ok {
		name = mapped
	}
	ev.Key = name
	return ev
}

// platformEvent adapts a terminal event to the workspace platform. Terminals
// have no command key; on macOS the option key, reported as alt, stands in
// for meta.
func platformEvent(p keybind.Platform, ev keybind.Event) keybind.Event {
	if p.Mac && ev.Alt {
		ev.Alt = false
		ev.Meta = true
	}
	return ev
}
