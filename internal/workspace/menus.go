package workspace

import (
	"fmt"

	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/atomicstack/treehouse/internal/menu"
)

// ShowMenu opens the named menu for ctx and returns its resolved entries.
// Any menu already open is replaced.
func (w *Workspace) ShowMenu(name string, ctx command.Context) ([]menu.Entry, error) {
	if _, ok := w.menus.Find(name); !ok {
		return nil, fmt.Errorf("unknown menu %q", name)
	}
	w.menuName = name
	w.menuCtx = ctx
	w.menuEntries = w.menus.Entries(name, w.commands)
	events.Menu.Show(name, len(w.menuEntries))
	return w.MenuEntries(), nil
}

// HideMenu closes the open menu. It is the hook for clicks landing anywhere.
func (w *Workspace) HideMenu() {
	if w.menuName == "" {
		return
	}
	events.Menu.Hide(w.menuName)
	w.menuName = ""
	w.menuCtx = command.Context{}
	w.menuEntries = nil
}

// MenuOpen returns the name of the open menu.
func (w *Workspace) MenuOpen() (string, bool) {
	return w.menuName, w.menuName != ""
}

func (w *Workspace) MenuContext() command.Context {
	return w.menuCtx
}

// MenuEntries returns the entries of the open menu.
func (w *Workspace) MenuEntries() []menu.Entry {
	out := make([]menu.Entry, len(w.menuEntries))
	copy(out, w.menuEntries)
	return out
}

// SelectMenuEntry invokes entry i of the open menu and closes the menu.
func (w *Workspace) SelectMenuEntry(i int) error {
	if i < 0 || i >= len(w.menuEntries) {
		return fmt.Errorf("menu entry %d out of range", i)
	}
	entry := w.menuEntries[i]
	ctx := w.menuCtx
	w.HideMenu()
	return entry.Invoke(w.commands, ctx)
}

// ShowPalette opens the command palette targeting ctx.
func (w *Workspace) ShowPalette(ctx command.Context) {
	w.paletteOpen = true
	w.paletteCtx = ctx
	events.Menu.Show("palette", len(w.commands.IDs()))
}

func (w *Workspace) HidePalette() {
	if !w.paletteOpen {
		return
	}
	w.paletteOpen = false
	w.paletteCtx = command.Context{}
	events.Menu.Hide("palette")
}

func (w *Workspace) PaletteOpen() bool {
	return w.paletteOpen
}

// PaletteContext returns the context commands picked from the palette run
// against.
func (w *Workspace) PaletteContext() command.Context {
	return w.paletteCtx
}
