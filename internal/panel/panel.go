// Package panel implements independent views onto the shared node tree.
//
// A panel shows one node as its visible root. Zooming pushes the current root
// onto a history stack; zooming out pops it back. Expansion state is kept per
// panel so the same node can be open in one panel and collapsed in another.
package panel

import (
	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/atomicstack/treehouse/internal/tree"
)

// Panel is a view rooted at a node of the shared tree.
type Panel struct {
	id       string
	root     *tree.Node
	history  []*tree.Node
	expanded map[string]bool
}

// New returns a panel showing root.
func New(id string, root *tree.Node) *Panel {
	return &Panel{
		id:       id,
		root:     root,
		expanded: make(map[string]bool),
	}
}

func (p *Panel) ID() string {
	return p.id
}

// Root returns the node currently shown at the top of the panel.
func (p *Panel) Root() *tree.Node {
	return p.root
}

// Push zooms into n, remembering the previous root.
func (p *Panel) Push(n *tree.Node) {
	if n == nil || n == p.root {
		return
	}
	p.history = append(p.history, p.root)
	p.root = n
	events.Panel.Zoom(p.id, n.ID(), len(p.history))
}

// Pop restores the previous root. It reports false when there is nothing to
// go back to.
func (p *Panel) Pop() bool {
	for len(p.history) > 0 {
		prev := p.history[len(p.history)-1]
		p.history = p.history[:len(p.history)-1]
		if !prev.Alive() {
			continue
		}
		p.root = prev
		events.Panel.Zoom(p.id, prev.ID(), len(p.history))
		return true
	}
	return false
}

// Depth returns the number of zoom levels below the panel's base root.
func (p *Panel) Depth() int {
	return len(p.history)
}

// History returns the stack of previous roots, oldest first.
func (p *Panel) History() []*tree.Node {
	out := make([]*tree.Node, len(p.history))
	copy(out, p.history)
	return out
}

// SetExpanded records whether n shows its children in this panel.
func (p *Panel) SetExpanded(n *tree.Node, expanded bool) {
	if n == nil {
		return
	}
	if expanded {
		p.expanded[n.ID()] = true
		return
	}
	delete(p.expanded, n.ID())
}

// Expanded reports whether n shows its children in this panel. The panel
// root is always expanded.
func (p *Panel) Expanded(n *tree.Node) bool {
	if n == nil {
		return false
	}
	if n == p.root {
		return true
	}
	return p.expanded[n.ID()]
}

// Forget drops expansion state held for id.
func (p *Panel) Forget(id string) {
	delete(p.expanded, id)
}
