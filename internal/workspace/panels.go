package workspace

import (
	"fmt"

	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/atomicstack/treehouse/internal/panel"
	"github.com/atomicstack/treehouse/internal/tree"
)

// Panels returns the open panels, main panel first.
func (w *Workspace) Panels() []*panel.Panel {
	out := make([]*panel.Panel, len(w.panels))
	copy(out, w.panels)
	return out
}

// PanelOpen reports whether p is one of the workspace's open panels.
func (w *Workspace) PanelOpen(p *panel.Panel) bool {
	return w.panelIndex(p) >= 0
}

// OpenPanel adds a panel rooted at n. A nil node roots it at the tree root.
func (w *Workspace) OpenPanel(n *tree.Node) *panel.Panel {
	if !n.Alive() {
		n = w.tree.Root()
	}
	return w.openPanel(n)
}

func (w *Workspace) openPanel(root *tree.Node) *panel.Panel {
	w.panelSeq++
	p := panel.New(fmt.Sprintf("panel-%d", w.panelSeq), root)
	w.panels = append(w.panels, p)
	events.Panel.Open(p.ID(), root.ID())
	return p
}

// ClosePanel removes p. Focus held in p moves to the main panel.
func (w *Workspace) ClosePanel(p *panel.Panel) error {
	idx := w.panelIndex(p)
	if idx < 0 {
		return ErrPanelClosed
	}
	if idx == 0 {
		return ErrMainPanel
	}
	w.panels = append(w.panels[:idx], w.panels[idx+1:]...)
	if w.focus.Panel == p {
		w.focus.Panel = w.MainPanel()
	}
	if w.paletteOpen && w.paletteCtx.Panel == p {
		w.HidePalette()
	}
	if w.menuName != "" && w.menuCtx.Panel == p {
		w.HideMenu()
	}
	events.Panel.Close(p.ID())
	return nil
}

func (w *Workspace) panelIndex(p *panel.Panel) int {
	if p == nil {
		return -1
	}
	for i, open := range w.panels {
		if open == p {
			return i
		}
	}
	return -1
}

// SetExpanded records the expansion state of n in panel p. A nil panel
// means the focused panel.
func (w *Workspace) SetExpanded(n *tree.Node, p *panel.Panel, expanded bool) {
	if p == nil {
		p = w.Focused().Panel
	}
	p.SetExpanded(n, expanded)
}

// Expanded reports whether n shows its children in panel p.
func (w *Workspace) Expanded(n *tree.Node, p *panel.Panel) bool {
	if p == nil {
		p = w.Focused().Panel
	}
	return p.Expanded(n)
}

// Destroy removes n and its subtree from the tree, drops expansion state held
// for them, and repairs panels whose root was inside the subtree. Panels that
// cannot zoom back out to a live root are closed.
func (w *Workspace) Destroy(n *tree.Node) error {
	var ids []string
	w.tree.Walk(n, func(x *tree.Node) bool {
		ids = append(ids, x.ID())
		return true
	})
	if err := w.tree.Destroy(n); err != nil {
		return err
	}
	for _, p := range w.Panels() {
		for _, id := range ids {
			p.Forget(id)
		}
		for !p.Root().Alive() {
			if !p.Pop() {
				_ = w.ClosePanel(p)
				break
			}
		}
	}
	return nil
}
