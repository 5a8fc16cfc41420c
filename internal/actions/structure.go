package actions

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/treehouse/internal/command"
)

func (a *actions) expand(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	a.ws.SetExpanded(ctx.Node, ctx.Panel, true)
	a.ws.Redraw()
	return nil
}

func (a *actions) collapse(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	a.ws.SetExpanded(ctx.Node, ctx.Panel, false)
	a.ws.Redraw()
	return nil
}

// indent moves the node under its previous sibling, as that sibling's last
// child.
func (a *actions) indent(ctx command.Context, _ ...any) error {
	n := ctx.Node
	if n == nil {
		return nil
	}
	prev := n.PrevSibling()
	if prev == nil {
		return nil
	}
	cursor := a.ws.Focused().Cursor
	if err := a.ws.Tree().SetParent(n, prev); err != nil {
		return err
	}
	a.ws.SetExpanded(prev, ctx.Panel, true)
	a.ws.Redraw()
	a.ws.Focus(n, ctx.Panel, cursor)
	return nil
}

// outdent moves the node out of its parent, directly after it. Nodes whose
// parent is the tree root or the panel root stay where they are.
func (a *actions) outdent(ctx command.Context, _ ...any) error {
	n := ctx.Node
	if n == nil {
		return nil
	}
	parent := n.Parent()
	if parent == nil || parent.IsRoot() || parent.Parent() == nil {
		return nil
	}
	if ctx.Panel != nil && parent == ctx.Panel.Root() {
		return nil
	}
	cursor := a.ws.Focused().Cursor
	if err := a.ws.Tree().SetParent(n, parent.Parent()); err != nil {
		return err
	}
	a.ws.Tree().SetSiblingIndex(n, parent.SiblingIndex()+1)
	if parent.ChildCount() == 0 {
		a.ws.SetExpanded(parent, ctx.Panel, false)
	}
	a.ws.Redraw()
	a.ws.Focus(n, ctx.Panel, cursor)
	return nil
}

// insertChild appends a new child, optionally named by the first argument.
func (a *actions) insertChild(ctx command.Context, args ...any) error {
	if ctx.Node == nil {
		return nil
	}
	name := stringArg(args)
	child := a.ws.Tree().NewNode(name)
	if err := a.ws.Tree().SetParent(child, ctx.Node); err != nil {
		return err
	}
	if ctx.Panel != nil {
		a.ws.SetExpanded(ctx.Node, ctx.Panel, true)
	}
	a.ws.Redraw()
	a.ws.Focus(child, ctx.Panel, utf8.RuneCountInString(name))
	return nil
}

func (a *actions) insertBefore(ctx command.Context, _ ...any) error {
	return a.insertSibling(ctx, "", 0)
}

// insert adds a sibling directly after the node.
func (a *actions) insert(ctx command.Context, args ...any) error {
	return a.insertSibling(ctx, stringArg(args), 1)
}

func (a *actions) insertSibling(ctx command.Context, name string, offset int) error {
	n := ctx.Node
	if n == nil || n.Parent() == nil {
		return nil
	}
	sibling := a.ws.Tree().NewNode(name)
	if err := a.ws.Tree().SetParent(sibling, n.Parent()); err != nil {
		return err
	}
	a.ws.Tree().SetSiblingIndex(sibling, n.SiblingIndex()+offset)
	a.ws.Redraw()
	a.ws.Focus(sibling, ctx.Panel, 0)
	return nil
}

// delete destroys the node and its subtree and focuses the previous
// sibling. When triggered by Backspace the cursor lands at the end of the
// sibling's label.
func (a *actions) delete(ctx command.Context, _ ...any) error {
	n := ctx.Node
	if n == nil {
		return nil
	}
	prev := n.PrevSibling()
	if err := a.ws.Destroy(n); err != nil {
		return err
	}
	a.ws.Redraw()
	if prev == nil {
		return nil
	}
	pos := 0
	if ctx.Event != nil && strings.EqualFold(ctx.Event.Key, "backspace") {
		pos = utf8.RuneCountInString(prev.Name())
	}
	a.ws.Focus(prev, ctx.Panel, pos)
	return nil
}

func (a *actions) generateRandom(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	for i := 0; i < randomChildren; i++ {
		child := a.ws.Tree().NewNode(randomName(a.cfg.rand, 8))
		if err := a.ws.Tree().SetParent(child, ctx.Node); err != nil {
			return err
		}
	}
	a.ws.Redraw()
	return nil
}
