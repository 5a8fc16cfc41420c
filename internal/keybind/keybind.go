// Package keybind resolves keyboard events against registered chords.
//
// A chord is a "+"-joined, case-insensitive list of modifier tokens
// (shift, ctrl, alt, meta) followed by the physical key name, for example
// "shift+meta+backspace". Matching is first-match-wins in registration order.
//
// On platforms other than macOS, "meta" is not a distinct modifier: a chord
// that declares either ctrl or meta is satisfied by the ctrl or the meta key
// being held. This lets Mac-style "meta+k" bindings work as ctrl+k elsewhere.
package keybind

import (
	"runtime"
	"strings"
)

// Event is a key press as reported by the input source.
type Event struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// Binding associates a command id with a chord.
type Binding struct {
	Command string `yaml:"command"`
	Key     string `yaml:"key"`
}

// Platform selects the modifier semantics used for matching and glyphs.
type Platform struct {
	Mac bool
}

// DefaultPlatform reports the platform of the running process.
func DefaultPlatform() Platform {
	return Platform{Mac: runtime.GOOS == "darwin"}
}

func (p Platform) String() string {
	if p.Mac {
		return "mac"
	}
	return "other"
}

var modifierSlots = [...]string{"shift", "ctrl", "alt", "meta"}

// Evaluate returns the first binding matching ev, in slice order.
func Evaluate(p Platform, bindings []Binding, ev Event) (Binding, bool) {
	key := strings.ToLower(ev.Key)
	for _, b := range bindings {
		mods, last := splitChord(b.Key)
		if last != key {
			continue
		}
		if modifiersAgree(p, mods, ev) {
			return b, true
		}
	}
	return Binding{}, false
}

func modifiersAgree(p Platform, mods []string, ev Event) bool {
	for _, slot := range modifierSlots {
		declared := contains(mods, slot)
		var held bool
		switch slot {
		case "shift":
			held = ev.Shift
		case "alt":
			held = ev.Alt
		case "ctrl":
			held = ev.Ctrl
			if !p.Mac {
				declared = declared || contains(mods, "meta")
				held = ev.Ctrl || ev.Meta
			}
		case "meta":
			if !p.Mac {
				continue
			}
			held = ev.Meta
		}
		if declared != held {
			return false
		}
	}
	return true
}

// splitChord lower-cases a chord and separates modifiers from the final key.
func splitChord(chord string) ([]string, string) {
	tokens := strings.Split(strings.ToLower(chord), "+")
	last := tokens[len(tokens)-1]
	return tokens[:len(tokens)-1], last
}

func contains(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// Bindings is an ordered binding registry bound to a platform.
type Bindings struct {
	platform Platform
	list     []Binding
}

// NewBindings returns an empty registry for the given platform.
func NewBindings(p Platform) *Bindings {
	return &Bindings{platform: p}
}

// Platform returns the platform the registry matches against.
func (b *Bindings) Platform() Platform {
	return b.platform
}

// Register appends a binding. Earlier registrations take priority.
func (b *Bindings) Register(binding Binding) {
	b.list = append(b.list, binding)
}

// Binding returns the first binding registered for commandID.
func (b *Bindings) Binding(commandID string) (Binding, bool) {
	for _, binding := range b.list {
		if binding.Command == commandID {
			return binding, true
		}
	}
	return Binding{}, false
}

// All returns a copy of the registered bindings in priority order.
func (b *Bindings) All() []Binding {
	out := make([]Binding, len(b.list))
	copy(out, b.list)
	return out
}

// Evaluate resolves ev against the registry.
func (b *Bindings) Evaluate(ev Event) (Binding, bool) {
	return Evaluate(b.platform, b.list, ev)
}
