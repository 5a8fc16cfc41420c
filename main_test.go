package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/treehouse/internal/app"
	"github.com/atomicstack/treehouse/internal/config"
)

func regularFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestStartupTracePayloadDescribesKeys(t *testing.T) {
	keymap := filepath.Join(t.TempDir(), "keys.yaml")
	data := "bindings:\n  - command: indent\n    key: ctrl+i\n  - command: outdent\n    key: ctrl+o\n"
	if err := os.WriteFile(keymap, []byte(data), 0o600); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	cfg := config.Config{
		App:   app.Config{Keymap: keymap, Platform: app.PlatformMac, ListKeys: true},
		Flags: map[string]string{"keymap": keymap, "platform": "mac", "listKeys": "true"},
		Args:  []string{"--keymap", keymap, "--platform", "mac", "--list-keys"},
	}
	f := regularFile(t)

	payload := startupTracePayload(cfg, f.Fd(), f.Fd())

	if payload["platform"] != app.PlatformMac {
		t.Fatalf("expected platform mac, got %v", payload["platform"])
	}
	summary, ok := payload["keymap"].(keymapSummary)
	if !ok {
		t.Fatalf("expected keymap summary in payload")
	}
	if summary.Path != keymap || summary.Bindings != 2 || summary.Error != "" {
		t.Fatalf("expected 2 bindings from %s, got %#v", keymap, summary)
	}
	if payload["listKeys"] != true {
		t.Fatalf("expected listKeys true, got %v", payload["listKeys"])
	}
	if _, ok := payload["terminal"]; ok {
		t.Fatalf("expected no terminal probe when listing keys")
	}
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok || flags["keymap"] != keymap {
		t.Fatalf("expected keymap flag in payload, got %v", payload["flags"])
	}
}

func TestStartupTracePayloadProbesTerminal(t *testing.T) {
	cfg := config.Config{
		App: app.Config{Keymap: filepath.Join(t.TempDir(), "missing.yaml"), Platform: app.PlatformOther},
	}
	f := regularFile(t)

	payload := startupTracePayload(cfg, f.Fd(), f.Fd())

	if payload["platform"] != app.PlatformOther {
		t.Fatalf("expected platform other, got %v", payload["platform"])
	}
	summary := payload["keymap"].(keymapSummary)
	if summary.Error == "" || summary.Bindings != 0 {
		t.Fatalf("expected keymap error for missing file, got %#v", summary)
	}
	info, ok := payload["terminal"].(terminalInfo)
	if !ok {
		t.Fatalf("expected terminal details in payload")
	}
	if info.Input || info.Output || info.Width != 0 {
		t.Fatalf("expected a regular file not to be a terminal, got %#v", info)
	}
}

func TestProbeTerminalUsesFixedSize(t *testing.T) {
	f := regularFile(t)
	info := probeTerminal(f.Fd(), f.Fd(), app.Config{Width: 100, Height: 30})
	if !info.Fixed || info.Width != 100 || info.Height != 30 {
		t.Fatalf("expected fixed 100x30, got %#v", info)
	}
	info = probeTerminal(f.Fd(), f.Fd(), app.Config{Width: 100})
	if info.Fixed || info.Width != 0 {
		t.Fatalf("expected width alone not to fix the size, got %#v", info)
	}
}

func TestPlatformName(t *testing.T) {
	if got := platformName(app.Config{Platform: app.PlatformMac}.KeyPlatform()); got != app.PlatformMac {
		t.Fatalf("expected mac, got %q", got)
	}
	if got := platformName(app.Config{Platform: app.PlatformOther}.KeyPlatform()); got != app.PlatformOther {
		t.Fatalf("expected other, got %q", got)
	}
}
