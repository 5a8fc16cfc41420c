package ui

import (
	"github.com/atomicstack/treehouse/internal/keybind"
	"github.com/atomicstack/treehouse/internal/logging"
	"github.com/atomicstack/treehouse/internal/menu"
	uistate "github.com/atomicstack/treehouse/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// menuKeys open the named menus for the focused node.
var menuKeys = map[string]string{
	"f1": "settings",
	"f2": "node",
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}
	m.errMsg = ""
	if _, open := m.ws.MenuOpen(); open {
		m.handleMenuKey(keyMsg)
		return nil
	}
	if m.ws.PaletteOpen() {
		m.handlePaletteKey(keyMsg)
		return nil
	}
	ev := platformEvent(m.ws.Platform(), KeyEvent(keyMsg))
	handled, err := m.ws.HandleKey(ev)
	if handled {
		m.setError(err)
		m.editorDirty = true
		return nil
	}
	if name, ok := menuKeys[keyMsg.String()]; ok {
		m.showMenu(name)
		return nil
	}
	return m.handleEditKey(keyMsg, ev)
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	m.errMsg = err.Error()
}

// handleEditKey feeds keys that no binding claimed to the label editor of
// the focused node. Enter adds a sibling and Backspace on an empty label
// deletes the node.
func (m *Model) handleEditKey(msg tea.KeyMsg, ev keybind.Event) tea.Cmd {
	sel := m.ws.Focused()
	if sel.Node == nil {
		return nil
	}
	m.syncEditor()
	switch msg.Type {
	case tea.KeyEnter:
		m.execute("insert", ev)
		return nil
	case tea.KeyBackspace:
		if sel.Node.Name() == "" {
			m.execute("delete", ev)
			return nil
		}
	case tea.KeyEsc:
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if value := m.editor.Value(); value != sel.Node.Name() {
		sel.Node.SetName(value)
		m.ws.Redraw()
	}
	m.ws.Focus(sel.Node, sel.Panel, m.editor.Position())
	return cmd
}

// execute runs id against the focused node on behalf of a key press.
func (m *Model) execute(id string, ev keybind.Event) {
	sel := m.ws.Focused()
	ctx := m.ws.NewContext(sel.Node, sel.Panel, &ev)
	m.setError(m.ws.Execute(id, ctx))
	m.editorDirty = true
}

// syncEditor loads the focused node's label into the editor, placing the
// cursor where the workspace selection asks for it.
func (m *Model) syncEditor() {
	sel := m.ws.Focused()
	if sel.Node == nil {
		m.editingID = ""
		m.editor.SetValue("")
		return
	}
	if !m.editor.Focused() {
		m.editor.Focus()
	}
	if m.editingID != sel.Node.ID() || m.editor.Value() != sel.Node.Name() {
		m.editingID = sel.Node.ID()
		m.editor.SetValue(sel.Node.Name())
	}
	if sel.Cursor >= 0 {
		m.editor.SetCursor(sel.Cursor)
	} else {
		m.editor.CursorEnd()
	}
}

func (m *Model) showMenu(name string) {
	entries, err := m.ws.ShowMenu(name, m.ws.Context())
	if err != nil {
		m.setError(err)
		return
	}
	m.menuCursor = firstEnabled(entries)
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) {
	entries := m.ws.MenuEntries()
	switch msg.Type {
	case tea.KeyEsc:
		m.ws.HideMenu()
	case tea.KeyUp:
		for i := m.menuCursor - 1; i >= 0; i-- {
			if !entries[i].Disabled {
				m.menuCursor = i
				break
			}
		}
	case tea.KeyDown:
		for i := m.menuCursor + 1; i < len(entries); i++ {
			if !entries[i].Disabled {
				m.menuCursor = i
				break
			}
		}
	case tea.KeyEnter:
		if len(entries) == 0 {
			m.ws.HideMenu()
			return
		}
		m.setError(m.ws.SelectMenuEntry(m.menuCursor))
		m.editorDirty = true
	}
}

func firstEnabled(entries []menu.Entry) int {
	for i, e := range entries {
		if !e.Disabled {
			return i
		}
	}
	return 0
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) {
	if m.palette == nil {
		m.syncPalette()
	}
	p := m.palette
	switch msg.Type {
	case tea.KeyEsc:
		m.ws.HidePalette()
		m.ws.Redraw()
	case tea.KeyEnter:
		item, ok := p.Selected()
		ctx := m.ws.PaletteContext()
		m.ws.HidePalette()
		if ok {
			m.setError(m.ws.Execute(item.ID, ctx))
		}
		m.ws.Redraw()
		m.editorDirty = true
	case tea.KeyUp, tea.KeyCtrlP:
		p.MoveCursorUp()
	case tea.KeyDown, tea.KeyCtrlN:
		p.MoveCursorDown()
	case tea.KeyBackspace:
		p.DeleteFilterRuneBackward()
	case tea.KeyCtrlW:
		p.DeleteFilterWordBackward()
	case tea.KeyCtrlU:
		p.SetFilter("", 0)
	case tea.KeySpace:
		p.InsertFilterText(" ")
	case tea.KeyRunes:
		if !msg.Alt {
			p.InsertFilterText(string(msg.Runes))
		}
	}
}

// syncPalette builds the palette state when the workspace opens the palette
// and drops it once closed.
func (m *Model) syncPalette() {
	if !m.ws.PaletteOpen() {
		m.palette = nil
		return
	}
	if m.palette != nil {
		return
	}
	cmds := m.ws.Commands().Commands()
	items := make([]uistate.Item, 0, len(cmds))
	for _, cmd := range cmds {
		if !cmd.Visible() || cmd.Disabled {
			continue
		}
		items = append(items, uistate.Item{ID: cmd.ID, Label: cmd.Label()})
	}
	m.palette = uistate.NewPalette(items)
}
