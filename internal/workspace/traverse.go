package workspace

import (
	"github.com/atomicstack/treehouse/internal/panel"
	"github.com/atomicstack/treehouse/internal/tree"
)

// Visible returns the nodes panel p displays, in display order. The panel
// root itself is not included.
func (w *Workspace) Visible(p *panel.Panel) []*tree.Node {
	if p == nil {
		p = w.Focused().Panel
	}
	root := p.Root()
	out := []*tree.Node{}
	w.tree.Walk(root, func(n *tree.Node) bool {
		if n != root {
			out = append(out, n)
		}
		return p.Expanded(n)
	})
	return out
}

// FindAbove returns the node displayed immediately above n in panel p, or nil
// when n is first or not displayed.
func (w *Workspace) FindAbove(n *tree.Node, p *panel.Panel) *tree.Node {
	visible := w.Visible(p)
	for i, x := range visible {
		if x == n {
			if i == 0 {
				return nil
			}
			return visible[i-1]
		}
	}
	return nil
}

// FindBelow returns the node displayed immediately below n in panel p, or nil
// when n is last or not displayed.
func (w *Workspace) FindBelow(n *tree.Node, p *panel.Panel) *tree.Node {
	visible := w.Visible(p)
	for i, x := range visible {
		if x == n && i+1 < len(visible) {
			return visible[i+1]
		}
	}
	return nil
}

// Depth returns how many levels n sits below the root of panel p, starting
// at zero for the root's children. It is -1 when n is not under that root.
func (w *Workspace) Depth(n *tree.Node, p *panel.Panel) int {
	if p == nil {
		p = w.Focused().Panel
	}
	depth := -1
	for x := n; x != nil; x = x.Parent() {
		if x == p.Root() {
			return depth
		}
		depth++
	}
	return -1
}
