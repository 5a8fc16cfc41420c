package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/treehouse/internal/app"
	"github.com/atomicstack/treehouse/internal/config"
	"github.com/atomicstack/treehouse/internal/keybind"
	"github.com/atomicstack/treehouse/internal/logging"
	"github.com/atomicstack/treehouse/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(cfg, os.Stdin.Fd(), os.Stdout.Fd()))
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload describes the editor about to start: the key platform
// bindings will be matched against, the keymap overrides and, unless only
// the bindings are being listed, the terminal it will draw on.
func startupTracePayload(cfg config.Config, stdin, stdout uintptr) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"platform": platformName(cfg.App.KeyPlatform()),
		"keymap":   summarizeKeymap(cfg.App.Keymap),
		"listKeys": cfg.App.ListKeys,
	}
	if !cfg.App.ListKeys {
		payload["terminal"] = probeTerminal(stdin, stdout, cfg.App)
	}
	return payload
}

func platformName(p keybind.Platform) string {
	if p.Mac {
		return app.PlatformMac
	}
	return app.PlatformOther
}

type keymapSummary struct {
	Path     string `json:"path,omitempty"`
	Bindings int    `json:"bindings"`
	Error    string `json:"error,omitempty"`
}

func summarizeKeymap(path string) keymapSummary {
	summary := keymapSummary{Path: path}
	if path == "" {
		return summary
	}
	bindings, err := keybind.LoadKeymap(path)
	if err != nil {
		summary.Error = err.Error()
		return summary
	}
	summary.Bindings = len(bindings)
	return summary
}

type terminalInfo struct {
	Input  bool   `json:"input"`
	Output bool   `json:"output"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Fixed  bool   `json:"fixed"`
	Error  string `json:"error,omitempty"`
}

// probeTerminal reports whether keys can be read from stdin and the outline
// drawn on stdout. The size is the configured one when both dimensions are
// fixed, otherwise the one stdout reports.
func probeTerminal(stdin, stdout uintptr, cfg app.Config) terminalInfo {
	info := terminalInfo{
		Input:  term.IsTerminal(int(stdin)),
		Output: term.IsTerminal(int(stdout)),
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		info.Width, info.Height, info.Fixed = cfg.Width, cfg.Height, true
		return info
	}
	if !info.Output {
		return info
	}
	width, height, err := term.GetSize(int(stdout))
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
