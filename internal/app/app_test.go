package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/treehouse/internal/actions"
	"github.com/atomicstack/treehouse/internal/backend"
	"github.com/atomicstack/treehouse/internal/keybind"
	"github.com/atomicstack/treehouse/internal/testutil"
)

func noClipboard() actions.Option {
	return actions.WithClipboard(func(string) error { return nil })
}

func TestKeyPlatform(t *testing.T) {
	tests := []struct {
		platform string
		want     keybind.Platform
	}{
		{PlatformMac, keybind.Platform{Mac: true}},
		{PlatformOther, keybind.Platform{Mac: false}},
		{PlatformAuto, keybind.DefaultPlatform()},
		{"", keybind.DefaultPlatform()},
	}
	for _, tt := range tests {
		if got := (Config{Platform: tt.platform}).KeyPlatform(); got != tt.want {
			t.Fatalf("platform %q: expected %v, got %v", tt.platform, tt.want, got)
		}
	}
}

func TestNewWorkspaceLoadsDemo(t *testing.T) {
	mem := backend.NewMemory(DemoRecords()...)
	ws, err := NewWorkspace(context.Background(), Config{Platform: PlatformOther}, mem, noClipboard())
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	if mem.InitializeCount() != 1 {
		t.Fatalf("expected backend initialised once, got %d", mem.InitializeCount())
	}
	root := ws.Tree().Root()
	if root.ChildCount() != 2 {
		t.Fatalf("expected two top-level demo nodes, got outline\n%s", testutil.Outline(ws.Tree(), root))
	}
	if got := ws.Focused().Node; got == nil || got.ID() != "welcome" {
		t.Fatalf("expected welcome focused, got %v", got)
	}
	if ws.Platform().Mac {
		t.Fatalf("expected other platform")
	}
	if _, ok := ws.Commands().Command("indent"); !ok {
		t.Fatalf("expected default commands registered")
	}
}

func TestNewWorkspaceInitializeError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewWorkspace(ctx, Config{}, backend.NewMemory(), noClipboard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewWorkspaceKeymapOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	data := "bindings:\n  - command: indent\n    key: ctrl+i\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	ws, err := NewWorkspace(context.Background(), Config{Platform: PlatformOther, Keymap: path}, backend.NewMemory(), noClipboard())
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	b, ok := ws.Bindings().Binding("indent")
	if !ok || b.Key != "ctrl+i" {
		t.Fatalf("expected keymap binding to win, got %#v", b)
	}
	if got, ok := ws.Bindings().Evaluate(keybind.Event{Key: "i", Ctrl: true}); !ok || got.Command != "indent" {
		t.Fatalf("expected ctrl+i to resolve to indent, got %#v", got)
	}
	if got, ok := ws.Bindings().Evaluate(keybind.Event{Key: "tab"}); !ok || got.Command != "indent" {
		t.Fatalf("expected default tab binding kept, got %#v", got)
	}
}

func TestNewWorkspaceMissingKeymap(t *testing.T) {
	_, err := NewWorkspace(context.Background(), Config{Keymap: filepath.Join(t.TempDir(), "missing.yaml")}, backend.NewMemory(), noClipboard())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing keymap error, got %v", err)
	}
}

func TestListKeys(t *testing.T) {
	ws, err := NewWorkspace(context.Background(), Config{Platform: PlatformOther}, backend.NewMemory(), noClipboard())
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	var buf bytes.Buffer
	if err := ListKeys(&buf, ws); err != nil {
		t.Fatalf("list keys: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if want := len(ws.Commands().IDs()) + 1; len(lines) != want {
		t.Fatalf("expected %d lines, got %d:\n%s", want, len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "COMMAND") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	var indent, zoom string
	for _, line := range lines {
		fields := strings.Fields(line)
		switch fields[0] {
		case "indent":
			indent = line
		case "zoom":
			zoom = line
		}
	}
	if !strings.Contains(indent, "tab") || !strings.HasSuffix(indent, "↹") {
		t.Fatalf("expected indent chord and glyph, got %q", indent)
	}
	if !strings.HasSuffix(zoom, "-") {
		t.Fatalf("expected unbound zoom to show a dash, got %q", zoom)
	}
}
