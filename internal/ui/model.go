package ui

import (
	"reflect"

	"github.com/atomicstack/treehouse/internal/theme"
	uistate "github.com/atomicstack/treehouse/internal/ui/state"
	"github.com/atomicstack/treehouse/internal/tree"
	"github.com/atomicstack/treehouse/internal/workspace"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const breadcrumbSeparator = "→"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the outline editor. It is also
// the workspace's renderer: redraw requests are counted and picked up by the
// next View.
type Model struct {
	ws *workspace.Workspace

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	editor      textinput.Model
	editingID   string
	editorDirty bool

	palette    *uistate.Palette
	menuCursor int

	errMsg   string
	quitting bool
	redraws  int
	changed  map[string]int

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps ws and registers the model as its renderer.
func NewModel(ws *workspace.Workspace, width, height int, showFooter bool) *Model {
	m := &Model{
		ws:         ws,
		showFooter: showFooter,
		changed:    map[string]int{},
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	editor := textinput.New()
	editor.Prompt = ""
	if styles.Cursor != nil {
		editor.Cursor.Style = styles.Cursor.Copy()
	}
	if styles.FocusedNode != nil {
		editor.TextStyle = styles.FocusedNode.Copy()
	}
	m.editor = editor
	ws.SetRenderer(m)
	m.registerHandlers()
	return m
}

// Redraw is called by the workspace after an action changed something
// visible.
func (m *Model) Redraw() {
	m.redraws++
}

// NodeChanged records in-place changes to a node. The redraw that follows
// the change is requested separately.
func (m *Model) NodeChanged(n *tree.Node) {
	m.changed[n.ID()]++
}

// Changes reports how many in-place change signals node id has raised.
func (m *Model) Changes(id string) int {
	return m.changed[id]
}

// Redraws reports how many redraw requests the model has received.
func (m *Model) Redraws() int {
	return m.redraws
}

// Workspace exposes the wrapped workspace.
func (m *Model) Workspace() *workspace.Workspace {
	return m.ws
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.syncEditor()
	return m.editor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate brings the palette and the label editor in line with the
// workspace after a message was handled.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncPalette()
	if m.editorDirty {
		m.editorDirty = false
		m.syncEditor()
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}
