package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/treehouse/internal/component"
	"github.com/atomicstack/treehouse/internal/panel"
	"github.com/atomicstack/treehouse/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxPaletteItems = 8
	columnGap       = "  "
	ellipsis        = "…"
	rootTitle       = "home"
	untitled        = "untitled"
)

// View renders every open panel side by side, followed by the open menu or
// palette, the last error and the optional footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	tail := m.overlayLines()
	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = m.height - len(tail)
		if bodyHeight < 2 {
			bodyHeight = 2
		}
	}
	panels := m.ws.Panels()
	colWidth := m.width
	if m.width > 0 && len(panels) > 1 {
		colWidth = (m.width - ansi.StringWidth(columnGap)*(len(panels)-1)) / len(panels)
	}
	columns := make([]string, 0, 2*len(panels))
	for i, p := range panels {
		if i > 0 {
			columns = append(columns, columnGap)
		}
		columns = append(columns, strings.Join(m.panelLines(p, colWidth, bodyHeight), "\n"))
	}
	body := columns[0]
	if len(columns) > 1 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	}
	if len(tail) == 0 {
		return body
	}
	return body + "\n" + strings.Join(tail, "\n")
}

// panelLines renders the breadcrumb and the visible outline of p, scrolled so
// the focused row stays on screen.
func (m *Model) panelLines(p *panel.Panel, width, height int) []string {
	sel := m.ws.Focused()
	headerStyle := styles.Header
	if sel.Panel == p {
		headerStyle = styles.PanelHeader
	}
	lines := []string{fit(render(headerStyle, m.breadcrumb(p)), width)}

	visible := m.ws.Visible(p)
	if len(visible) == 0 {
		return append(lines, fit(render(styles.Info, "(empty)"), width))
	}
	rows := len(visible)
	if height > 0 && rows > height-1 {
		rows = height - 1
	}
	start := 0
	for i, n := range visible {
		if n == sel.Node && sel.Panel == p && i >= rows {
			start = i - rows + 1
		}
	}
	for _, n := range visible[start : start+rows] {
		focused := n == sel.Node && sel.Panel == p
		lines = append(lines, fit(m.nodeRow(n, p, focused), width))
	}
	return lines
}

// breadcrumb names the panel's zoom history followed by its current root.
func (m *Model) breadcrumb(p *panel.Panel) string {
	trail := append(p.History(), p.Root())
	names := make([]string, 0, len(trail))
	for _, n := range trail {
		names = append(names, nodeTitle(n))
	}
	return strings.Join(names, " "+breadcrumbSeparator+" ")
}

func nodeTitle(n *tree.Node) string {
	switch {
	case n.IsRoot():
		return rootTitle
	case n.Name() == "":
		return untitled
	default:
		return n.Name()
	}
}

func (m *Model) nodeRow(n *tree.Node, p *panel.Panel, focused bool) string {
	bullet := "•"
	if n.ChildCount() > 0 && !m.ws.Expanded(n, p) {
		bullet = "▸"
	}
	bulletStyle, labelStyle := styles.Bullet, styles.Node
	if focused {
		bulletStyle, labelStyle = styles.FocusedBullet, styles.FocusedNode
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("  ", m.ws.Depth(n, p)))
	b.WriteString(render(bulletStyle, bullet))
	b.WriteString(" ")
	if cb, ok := component.As[*component.Checkbox](n.Components(), component.KindCheckbox); ok {
		mark := "[ ]"
		if cb.Checked {
			mark = "[x]"
			if !focused {
				labelStyle = styles.Done
			}
		}
		b.WriteString(render(styles.Checkbox, mark))
		b.WriteString(" ")
	}
	if n.HasComponent(component.KindPage) {
		b.WriteString(render(styles.Page, "¶"))
		b.WriteString(" ")
	}
	if focused && m.editingID == n.ID() {
		b.WriteString(m.editor.View())
	} else {
		b.WriteString(render(labelStyle, n.Name()))
	}
	return b.String()
}

// overlayLines renders everything below the panels.
func (m *Model) overlayLines() []string {
	m.syncPalette()
	var lines []string
	if name, open := m.ws.MenuOpen(); open {
		lines = append(lines, m.menuLines(name)...)
	} else if m.palette != nil {
		lines = append(lines, m.paletteLines()...)
	}
	if m.errMsg != "" {
		lines = append(lines, fit(render(styles.Error, fmt.Sprintf("Error: %s", m.errMsg)), m.width))
	}
	if m.showFooter {
		lines = append(lines, fit(render(styles.Footer, m.footer()), m.width))
	}
	return lines
}

func (m *Model) menuLines(name string) []string {
	lines := []string{fit(render(styles.Header, name), m.width)}
	entries := m.ws.MenuEntries()
	if len(entries) == 0 {
		return append(lines, fit(render(styles.Info, "(no entries)"), m.width))
	}
	for i, e := range entries {
		style := styles.Item
		prefix := "  "
		switch {
		case e.Disabled:
			style = styles.DisabledItem
		case i == m.menuCursor:
			style = styles.SelectedItem
			prefix = "› "
		}
		lines = append(lines, fit(render(style, prefix+e.Label), m.width))
	}
	return lines
}

func (m *Model) paletteLines() []string {
	p := m.palette
	query := render(styles.Filter, p.Filter)
	if p.Filter == "" {
		query = render(styles.FilterPlaceholder, "type a command")
	}
	lines := []string{fit(render(styles.FilterPrompt, "> ")+query, m.width)}
	if len(p.Items) == 0 {
		return append(lines, fit(render(styles.Info, fmt.Sprintf("No matches for %q", p.Filter)), m.width))
	}
	p.EnsureCursorVisible(maxPaletteItems)
	end := p.ViewportOffset + maxPaletteItems
	if end > len(p.Items) {
		end = len(p.Items)
	}
	bindings := m.ws.Bindings()
	for i := p.ViewportOffset; i < end; i++ {
		item := p.Items[i]
		style, prefix := styles.Item, "  "
		if i == p.Cursor {
			style, prefix = styles.SelectedItem, "› "
		}
		row := render(style, prefix+item.Label)
		if symbols := bindings.Symbols(item.ID); len(symbols) > 0 {
			row += " " + render(styles.Chord, strings.Join(symbols, ""))
		}
		lines = append(lines, fit(row, m.width))
	}
	return lines
}

func (m *Model) footer() string {
	parts := []string{}
	if symbols := m.ws.Bindings().Symbols("pick-command"); len(symbols) > 0 {
		parts = append(parts, strings.Join(symbols, "")+" commands")
	}
	parts = append(parts, "f1 settings", "f2 node menu", "ctrl+c quit")
	return strings.Join(parts, "  ")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

// fit truncates a rendered line to width columns and pads it out to exactly
// width. A width of zero leaves the line alone.
func fit(line string, width int) string {
	if width <= 0 {
		return line
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, ellipsis)
	}
	return line + strings.Repeat(" ", width-w)
}
