package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/treehouse/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{Platform: app.PlatformAuto}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected logging defaults, got %#v", cfg.Logging)
	}
	if cfg.Flags["platform"] != app.PlatformAuto {
		t.Fatalf("expected platform flag recorded, got %q", cfg.Flags["platform"])
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	environ := []string{
		"TREEHOUSE_WIDTH=80",
		"TREEHOUSE_HEIGHT=24",
		"TREEHOUSE_FOOTER=true",
		"TREEHOUSE_KEYMAP=/tmp/keys.yaml",
		"TREEHOUSE_PLATFORM=Mac",
		"TREEHOUSE_TRACE=1",
		"TREEHOUSE_LOG_FILE=/tmp/treehouse.log",
		"UNRELATED",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{
		Width:      80,
		Height:     24,
		ShowFooter: true,
		Keymap:     "/tmp/keys.yaml",
		Platform:   app.PlatformMac,
	}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/treehouse.log" {
		t.Fatalf("expected logging from env, got %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	args := []string{"--width", "100", "--platform", "other", "--list-keys"}
	cfg, err := LoadArgs(args, []string{"TREEHOUSE_WIDTH=80", "TREEHOUSE_PLATFORM=mac"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Platform != app.PlatformOther || !cfg.App.ListKeys {
		t.Fatalf("expected flags to win, got %#v", cfg.App)
	}
	if strings.Join(cfg.Args, " ") != strings.Join(args, " ") {
		t.Fatalf("expected args recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TREEHOUSE_WIDTH=wide", "TREEHOUSE_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected defaults for malformed values, got %#v", cfg.App)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	tests := [][]string{
		{"--width", "-1"},
		{"--height", "-5"},
		{"--no-such-flag"},
	}
	for _, args := range tests {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	keymap := filepath.Join(dir, "keymap.yaml")
	if err := os.WriteFile(keymap, []byte("bindings: []\n"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	tests := []struct {
		name    string
		cfg     app.Config
		wantErr bool
	}{
		{"auto", app.Config{Platform: app.PlatformAuto}, false},
		{"mac with keymap", app.Config{Platform: app.PlatformMac, Keymap: keymap}, false},
		{"bad platform", app.Config{Platform: "windows"}, true},
		{"missing keymap", app.Config{Platform: app.PlatformOther, Keymap: filepath.Join(dir, "nope.yaml")}, true},
		{"directory keymap", app.Config{Platform: app.PlatformOther, Keymap: dir}, true},
	}
	for _, tt := range tests {
		err := Validate(Config{App: tt.cfg})
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: expected error %v, got %v", tt.name, tt.wantErr, err)
		}
	}
}
