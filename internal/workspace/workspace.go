// Package workspace composes the outline editor core.
//
// A Workspace owns the node tree, the open panels, the command and binding
// registries, the menu definitions and the storage backend. It tracks which
// node has focus, routes key events to bound commands and asks its Renderer
// to redraw when an action has changed something visible.
//
// The workspace is not safe for concurrent use. Work that finishes on another
// goroutine must come back to the owning goroutine and go through a Pending
// obtained from Defer, which re-validates the captured context first.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/treehouse/internal/backend"
	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/data/dispatcher"
	"github.com/atomicstack/treehouse/internal/keybind"
	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/atomicstack/treehouse/internal/menu"
	"github.com/atomicstack/treehouse/internal/panel"
	"github.com/atomicstack/treehouse/internal/tree"
)

var (
	ErrMainPanel   = errors.New("the main panel cannot be closed")
	ErrPanelClosed = errors.New("panel is not open")
)

// Renderer is told when the view needs to be rebuilt. Redundant calls are
// allowed.
type Renderer interface {
	Redraw()
}

// NodeRenderer is implemented by renderers that want per-node change signals
// raised through tree.Node.Changed.
type NodeRenderer interface {
	NodeChanged(*tree.Node)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func()

func (f RendererFunc) Redraw() { f() }

// Option configures a Workspace.
type Option func(*Workspace)

func WithPlatform(p keybind.Platform) Option {
	return func(w *Workspace) { w.platform = p }
}

func WithBackend(b backend.Backend) Option {
	return func(w *Workspace) {
		if b != nil {
			w.backend = b
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(w *Workspace) { w.renderer = r }
}

// WithTree uses an existing tree instead of a fresh one.
func WithTree(t *tree.Tree) Option {
	return func(w *Workspace) {
		if t != nil {
			w.tree = t
		}
	}
}

// Selection is the focused node, the panel it is shown in and the text
// cursor position inside its label. A negative Cursor leaves the position to
// the renderer.
type Selection struct {
	Node   *tree.Node
	Panel  *panel.Panel
	Cursor int
}

type Workspace struct {
	tree     *tree.Tree
	platform keybind.Platform
	commands *command.Registry
	bindings *keybind.Bindings
	menus    *menu.Registry
	backend  backend.Backend
	renderer Renderer

	panels   []*panel.Panel
	panelSeq int
	focus    Selection

	menuName    string
	menuCtx     command.Context
	menuEntries []menu.Entry
	paletteOpen bool
	paletteCtx  command.Context

	redraws int
	changes int

	initMu      sync.Mutex
	initialized bool
}

// New builds a workspace with a single main panel rooted at the tree root.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		platform: keybind.DefaultPlatform(),
		commands: command.NewRegistry(),
		menus:    menu.NewRegistry(),
		focus:    Selection{Cursor: -1},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.tree == nil {
		w.tree = tree.New()
	}
	if w.backend == nil {
		w.backend = backend.NewMemory()
	}
	w.bindings = keybind.NewBindings(w.platform)
	w.tree.SetNotifier(tree.NotifierFunc(w.nodeChanged))
	w.openPanel(w.tree.Root())
	return w
}

func (w *Workspace) Tree() *tree.Tree {
	return w.tree
}

func (w *Workspace) Platform() keybind.Platform {
	return w.platform
}

func (w *Workspace) Commands() *command.Registry {
	return w.commands
}

func (w *Workspace) Bindings() *keybind.Bindings {
	return w.bindings
}

func (w *Workspace) Menus() *menu.Registry {
	return w.menus
}

func (w *Workspace) Backend() backend.Backend {
	return w.backend
}

// SetRenderer replaces the renderer, typically once the UI model exists.
func (w *Workspace) SetRenderer(r Renderer) {
	w.renderer = r
}

// MainPanel returns the panel created with the workspace. It is never closed.
func (w *Workspace) MainPanel() *panel.Panel {
	return w.panels[0]
}

// Redraws counts Redraw calls.
func (w *Workspace) Redraws() int {
	return w.redraws
}

// Changes counts change signals raised through tree.Node.Changed.
func (w *Workspace) Changes() int {
	return w.changes
}

func (w *Workspace) Initialized() bool {
	return w.isInitialized()
}

// NewContext builds a command context for an explicit target.
func (w *Workspace) NewContext(n *tree.Node, p *panel.Panel, ev *keybind.Event) command.Context {
	return command.Context{Node: n, Panel: p, Event: ev}
}

// Register adds cmd to the command registry and, when chord is not empty,
// binds it.
func (w *Workspace) Register(cmd command.Command, chord string) error {
	if err := w.commands.Register(cmd); err != nil {
		return err
	}
	if chord != "" {
		w.bindings.Register(keybind.Binding{Command: cmd.ID, Key: chord})
	}
	return nil
}

// Execute runs a command by id.
func (w *Workspace) Execute(id string, ctx command.Context, args ...any) error {
	return w.commands.Execute(id, ctx, args...)
}

// Initialize prepares the backend and loads its records into the tree. Only
// the first successful call does any work.
func (w *Workspace) Initialize(ctx context.Context) error {
	w.initMu.Lock()
	defer w.initMu.Unlock()
	if w.initialized {
		return nil
	}
	if init, ok := w.backend.(backend.Initializer); ok {
		if err := init.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize backend: %w", err)
		}
	}
	records, err := w.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	dispatcher.Apply(w.tree, records)
	w.initialized = true
	if !w.focus.Node.Alive() {
		if first := w.tree.Root().Child(0); first != nil {
			w.Focus(first, w.MainPanel(), -1)
		}
	}
	events.App.Initialized(w.tree.Len() - 1)
	return nil
}

func (w *Workspace) isInitialized() bool {
	w.initMu.Lock()
	defer w.initMu.Unlock()
	return w.initialized
}

// Save stores a snapshot of the tree through the backend.
func (w *Workspace) Save(ctx context.Context) error {
	if err := w.backend.Save(ctx, dispatcher.Snapshot(w.tree)); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// Reset discards every node below the root, closes secondary panels and
// reloads the backend's records.
func (w *Workspace) Reset(ctx context.Context) error {
	records, err := w.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	for _, p := range w.Panels()[1:] {
		_ = w.ClosePanel(p)
	}
	for w.MainPanel().Pop() {
	}
	for _, child := range w.tree.Root().Children() {
		if err := w.Destroy(child); err != nil {
			return err
		}
	}
	w.HideMenu()
	w.HidePalette()
	dispatcher.Apply(w.tree, records)
	w.Blur()
	if first := w.tree.Root().Child(0); first != nil {
		w.Focus(first, w.MainPanel(), -1)
	}
	return nil
}

// Focus moves focus to n in panel p. A nil panel keeps the current one, or
// falls back to the main panel.
func (w *Workspace) Focus(n *tree.Node, p *panel.Panel, cursor int) {
	if p == nil {
		p = w.focus.Panel
	}
	if p == nil || !w.PanelOpen(p) {
		p = w.MainPanel()
	}
	w.focus = Selection{Node: n, Panel: p, Cursor: cursor}
}

// Blur clears the focused node.
func (w *Workspace) Blur() {
	w.focus.Node = nil
	w.focus.Cursor = -1
}

// Focused returns the current selection. A destroyed node is never reported
// as focused.
func (w *Workspace) Focused() Selection {
	sel := w.focus
	if !sel.Node.Alive() {
		sel.Node = nil
	}
	if sel.Panel == nil {
		sel.Panel = w.MainPanel()
	}
	return sel
}

// Context builds a command context from the current focus.
func (w *Workspace) Context() command.Context {
	sel := w.Focused()
	return command.Context{Node: sel.Node, Panel: sel.Panel}
}

// HandleKey resolves ev against the bindings and runs the bound command
// against the focused node. It reports whether the event was consumed; a
// binding without a focused node is not consumed and runs nothing.
func (w *Workspace) HandleKey(ev keybind.Event) (bool, error) {
	b, ok := w.bindings.Evaluate(ev)
	if !ok {
		return false, nil
	}
	ctx := w.Context()
	if ctx.Node == nil {
		events.Keys.Unrouted(ev.Key, b.Command)
		return false, nil
	}
	events.Keys.Match(ev.Key, b.Key, b.Command)
	ctx.Event = &ev
	return true, w.commands.Execute(b.Command, ctx)
}

// Redraw asks the renderer to rebuild the view.
func (w *Workspace) Redraw() {
	w.redraws++
	if w.renderer != nil {
		w.renderer.Redraw()
	}
}

func (w *Workspace) nodeChanged(n *tree.Node) {
	w.changes++
	if nr, ok := w.renderer.(NodeRenderer); ok {
		nr.NodeChanged(n)
	}
}

// Authenticator returns the backend's authenticator, if it has one.
func (w *Workspace) Authenticator() (backend.Authenticator, bool) {
	auth, ok := w.backend.(backend.Authenticator)
	return auth, ok
}

// Authenticated reports whether the backend has a signed-in user.
func (w *Workspace) Authenticated() bool {
	auth, ok := w.Authenticator()
	return ok && auth.Authenticated()
}
