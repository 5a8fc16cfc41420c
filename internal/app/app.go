package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/treehouse/internal/actions"
	"github.com/atomicstack/treehouse/internal/backend"
	"github.com/atomicstack/treehouse/internal/keybind"
	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/atomicstack/treehouse/internal/ui"
	"github.com/atomicstack/treehouse/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	PlatformAuto  = "auto"
	PlatformMac   = "mac"
	PlatformOther = "other"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Keymap     string
	Platform   string
	ListKeys   bool
}

// KeyPlatform resolves the configured modifier semantics. Anything other
// than mac or other follows the running OS.
func (c Config) KeyPlatform() keybind.Platform {
	switch c.Platform {
	case PlatformMac:
		return keybind.Platform{Mac: true}
	case PlatformOther:
		return keybind.Platform{Mac: false}
	default:
		return keybind.DefaultPlatform()
	}
}

// NewWorkspace builds a workspace over b, loads its records, applies the
// user keymap and registers the default commands. User bindings are
// registered first so they win over the defaults.
func NewWorkspace(ctx context.Context, cfg Config, b backend.Backend, opts ...actions.Option) (*workspace.Workspace, error) {
	ws := workspace.New(
		workspace.WithPlatform(cfg.KeyPlatform()),
		workspace.WithBackend(b),
	)
	if err := ws.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize workspace: %w", err)
	}
	if cfg.Keymap != "" {
		bindings, err := keybind.LoadKeymap(cfg.Keymap)
		if err != nil {
			return nil, err
		}
		for _, binding := range bindings {
			ws.Bindings().Register(binding)
		}
		events.Keys.Keymap(cfg.Keymap, len(bindings))
	}
	if err := actions.Setup(ws, opts...); err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}
	return ws, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx := context.Background()
	ws, err := NewWorkspace(ctx, cfg, backend.NewMemory(DemoRecords()...))
	if err != nil {
		return err
	}
	if cfg.ListKeys {
		return ListKeys(os.Stdout, ws)
	}
	model := ui.NewModel(ws, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	return ws.Save(ctx)
}
