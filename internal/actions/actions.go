// Package actions registers the editor's default commands, key bindings and
// menus on a workspace.
package actions

import (
	"math/rand"
	"time"

	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/workspace"
	"github.com/atotto/clipboard"
)

// IssueURL is where the settings menu sends bug reports.
const IssueURL = "https://github.com/treehousedev/treehouse/issues"

type config struct {
	clipboard     func(string) error
	readClipboard func() (string, error)
	rand          *rand.Rand
}

// Option customises Setup.
type Option func(*config)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(c *config) {
		if write != nil {
			c.clipboard = write
		}
	}
}

// WithClipboardReader replaces the system clipboard reader.
func WithClipboardReader(read func() (string, error)) Option {
	return func(c *config) {
		if read != nil {
			c.readClipboard = read
		}
	}
}

// WithRand fixes the random source used by generate-random.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

type binding struct {
	cmd   command.Command
	chord string
}

// Setup registers the default commands, their bindings and the node and
// settings menus. Bindings already present on the workspace keep priority
// over the defaults.
func Setup(ws *workspace.Workspace, opts ...Option) error {
	cfg := &config{
		clipboard:     clipboard.WriteAll,
		readClipboard: clipboard.ReadAll,
		rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	a := &actions{ws: ws, cfg: cfg}

	for _, b := range a.commands() {
		if err := ws.Register(b.cmd, b.chord); err != nil {
			return err
		}
	}
	a.registerMenus()
	return nil
}

type actions struct {
	ws  *workspace.Workspace
	cfg *config
}

func (a *actions) commands() []binding {
	return []binding{
		{command.Command{ID: "add-page", Title: "Add page", Action: a.addPage}, ""},
		{command.Command{ID: "remove-page", Title: "Remove page", Action: a.removePage}, ""},
		{command.Command{ID: "add-checkbox", Title: "Add checkbox", Action: a.addCheckbox}, ""},
		{command.Command{ID: "remove-checkbox", Title: "Remove checkbox", Action: a.removeCheckbox}, ""},
		{command.Command{ID: "mark-done", Title: "Mark done", Action: a.markDone}, "meta+enter"},
		{command.Command{ID: "expand", Title: "Expand", Action: a.expand}, "meta+arrowdown"},
		{command.Command{ID: "collapse", Title: "Collapse", Action: a.collapse}, "meta+arrowup"},
		{command.Command{ID: "indent", Title: "Indent", Action: a.indent}, "tab"},
		{command.Command{ID: "outdent", Title: "Outdent", Action: a.outdent}, "shift+tab"},
		{command.Command{ID: "insert-child", Title: "Insert child", Action: a.insertChild}, ""},
		{command.Command{ID: "insert-before", Title: "Insert before", Action: a.insertBefore}, ""},
		{command.Command{ID: "insert", Title: "Insert node", Action: a.insert}, "shift+enter"},
		{command.Command{ID: "delete", Title: "Delete node", Action: a.delete}, "shift+meta+backspace"},
		{command.Command{ID: "prev", Action: a.prev}, "arrowup"},
		{command.Command{ID: "next", Action: a.next}, "arrowdown"},
		{command.Command{ID: "pick-command", Action: a.pickCommand}, "meta+k"},
		{command.Command{ID: "new-panel", Title: "Open in new panel", Action: a.newPanel}, ""},
		{command.Command{ID: "close-panel", Title: "Close panel", Action: a.closePanel}, ""},
		{command.Command{ID: "zoom", Title: "Open", Action: a.zoom}, ""},
		{command.Command{ID: "zoom-out", Title: "Back", Action: a.zoomOut}, "meta+arrowleft"},
		{command.Command{ID: "generate-random", Title: "Generate random children", Action: a.generateRandom}, ""},
		{command.Command{ID: "copy", Title: "Copy label", Action: a.copy}, "meta+c"},
		{command.Command{ID: "paste", Title: "Paste lines", Action: a.paste}, "meta+v"},
	}
}

func stringArg(args []any) string {
	if len(args) == 0 {
		return ""
	}
	s, _ := args[0].(string)
	return s
}
