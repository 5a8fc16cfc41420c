package keybind

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var (
	mac   = Platform{Mac: true}
	other = Platform{Mac: false}
)

func TestEvaluate(t *testing.T) {
	bindings := []Binding{
		{Command: "mark-done", Key: "meta+enter"},
		{Command: "insert", Key: "shift+enter"},
		{Command: "indent", Key: "tab"},
		{Command: "outdent", Key: "shift+tab"},
		{Command: "delete", Key: "shift+meta+backspace"},
		{Command: "pick-command", Key: "meta+k"},
		{Command: "prev", Key: "arrowup"},
	}

	tests := []struct {
		name     string
		platform Platform
		event    Event
		want     string
	}{
		{"plain key", other, Event{Key: "Tab"}, "indent"},
		{"shifted key", other, Event{Key: "tab", Shift: true}, "outdent"},
		{"extra modifier rejects", other, Event{Key: "tab", Alt: true}, ""},
		{"meta chord via ctrl off mac", other, Event{Key: "k", Ctrl: true}, "pick-command"},
		{"meta chord via meta off mac", other, Event{Key: "k", Meta: true}, "pick-command"},
		{"meta chord needs meta on mac", mac, Event{Key: "k", Ctrl: true}, ""},
		{"meta chord on mac", mac, Event{Key: "K", Meta: true}, "pick-command"},
		{"missing modifier", other, Event{Key: "k"}, ""},
		{"three token chord", other, Event{Key: "Backspace", Shift: true, Ctrl: true}, "delete"},
		{"three token chord on mac", mac, Event{Key: "Backspace", Shift: true, Meta: true}, "delete"},
		{"three token chord missing shift", other, Event{Key: "Backspace", Ctrl: true}, ""},
		{"unbound key", other, Event{Key: "x"}, ""},
		{"case insensitive key", other, Event{Key: "ArrowUp"}, "prev"},
		{"enter without modifiers", other, Event{Key: "enter"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Evaluate(tt.platform, bindings, tt.event)
			if tt.want == "" {
				if ok {
					t.Fatalf("expected no match, got %q", got.Command)
				}
				return
			}
			if !ok {
				t.Fatalf("expected %q, got no match", tt.want)
			}
			if got.Command != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got.Command)
			}
		})
	}
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	bindings := []Binding{
		{Command: "first", Key: "ctrl+k"},
		{Command: "second", Key: "meta+k"},
	}
	ev := Event{Key: "k", Ctrl: true}
	for i := 0; i < 3; i++ {
		got, ok := Evaluate(other, bindings, ev)
		if !ok || got.Command != "first" {
			t.Fatalf("expected first binding to win, got %#v (ok=%v)", got, ok)
		}
	}

	reversed := []Binding{bindings[1], bindings[0]}
	got, ok := Evaluate(other, reversed, ev)
	if !ok || got.Command != "second" {
		t.Fatalf("expected registration order to decide, got %#v", got)
	}
}

// The result must only depend on the inputs, for every combination of held
// modifiers.
func TestEvaluateExhaustiveModifiers(t *testing.T) {
	bindings := []Binding{{Command: "c", Key: "ctrl+alt+x"}}
	for mask := 0; mask < 16; mask++ {
		ev := Event{
			Key:   "x",
			Shift: mask&1 != 0,
			Ctrl:  mask&2 != 0,
			Alt:   mask&4 != 0,
			Meta:  mask&8 != 0,
		}
		onOther := !ev.Shift && ev.Alt && (ev.Ctrl || ev.Meta)
		if _, ok := Evaluate(other, bindings, ev); ok != onOther {
			t.Fatalf("other platform mask %04b: expected %v, got %v", mask, onOther, ok)
		}
		onMac := !ev.Shift && ev.Alt && ev.Ctrl && !ev.Meta
		if _, ok := Evaluate(mac, bindings, ev); ok != onMac {
			t.Fatalf("mac mask %04b: expected %v, got %v", mask, onMac, ok)
		}
	}
}

func TestEvaluateEmpty(t *testing.T) {
	if _, ok := Evaluate(other, nil, Event{Key: "tab"}); ok {
		t.Fatalf("expected no match against empty bindings")
	}
}

func TestBindingsRegistry(t *testing.T) {
	b := NewBindings(other)
	b.Register(Binding{Command: "indent", Key: "tab"})
	b.Register(Binding{Command: "indent", Key: "ctrl+i"})
	b.Register(Binding{Command: "outdent", Key: "shift+tab"})

	got, ok := b.Binding("indent")
	if !ok || got.Key != "tab" {
		t.Fatalf("expected first indent binding, got %#v", got)
	}
	if _, ok := b.Binding("missing"); ok {
		t.Fatalf("expected no binding for unknown command")
	}
	if m, ok := b.Evaluate(Event{Key: "i", Ctrl: true}); !ok || m.Command != "indent" {
		t.Fatalf("expected secondary chord to resolve to indent, got %#v", m)
	}

	all := b.All()
	all[0].Key = "mutated"
	if again, _ := b.Binding("indent"); again.Key != "tab" {
		t.Fatalf("expected All to return a copy")
	}
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		chord    string
		want     []string
	}{
		{"meta enter mac", mac, "meta+enter", []string{"⌘", "⏎"}},
		{"meta enter other", other, "meta+enter", []string{"⌃", "⏎"}},
		{"passthrough", other, "shift+K", []string{"⇧", "k"}},
		{"arrows", mac, "meta+arrowdown", []string{"⌘", "↓"}},
		{"delete chord", mac, "shift+meta+backspace", []string{"⇧", "⌘", "⌫"}},
		{"tab", other, "tab", []string{"↹"}},
		{"empty", mac, "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Symbols(tt.platform, tt.chord)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBindingsSymbols(t *testing.T) {
	b := NewBindings(mac)
	b.Register(Binding{Command: "pick-command", Key: "meta+k"})
	if got := b.Symbols("pick-command"); !reflect.DeepEqual(got, []string{"⌘", "k"}) {
		t.Fatalf("unexpected symbols %q", got)
	}
	if got := b.Symbols("nope"); got != nil {
		t.Fatalf("expected nil symbols for unbound command, got %q", got)
	}
}

func TestParseKeymap(t *testing.T) {
	data := []byte("bindings:\n  - command: indent\n    key: ctrl+i\n  - command: \" outdent \"\n    key: ctrl+o\n")
	got, err := ParseKeymap(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Binding{{Command: "indent", Key: "ctrl+i"}, {Command: "outdent", Key: "ctrl+o"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	if _, err := ParseKeymap([]byte("bindings:\n  - command: indent\n")); err == nil {
		t.Fatalf("expected error for entry without key")
	}
	if _, err := ParseKeymap([]byte("bindings: [")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadKeymap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("bindings:\n  - command: zoom\n    key: meta+o\n"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	got, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Command != "zoom" {
		t.Fatalf("unexpected bindings %#v", got)
	}
	if _, err := LoadKeymap(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
