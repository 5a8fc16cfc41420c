package actions

import (
	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/panel"
)

func (a *actions) prev(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	if above := a.ws.FindAbove(ctx.Node, ctx.Panel); above != nil {
		a.ws.Focus(above, ctx.Panel, -1)
	}
	return nil
}

func (a *actions) next(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	if below := a.ws.FindBelow(ctx.Node, ctx.Panel); below != nil {
		a.ws.Focus(below, ctx.Panel, -1)
	}
	return nil
}

func (a *actions) pickCommand(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	a.ws.ShowPalette(a.ws.NewContext(ctx.Node, ctx.Panel, nil))
	a.ws.Redraw()
	return nil
}

func (a *actions) newPanel(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	a.ws.OpenPanel(ctx.Node)
	a.ws.Redraw()
	return nil
}

// closePanel closes the panel given as the first argument, or the panel of
// the context.
func (a *actions) closePanel(ctx command.Context, args ...any) error {
	p := ctx.Panel
	if len(args) > 0 {
		if arg, ok := args[0].(*panel.Panel); ok && arg != nil {
			p = arg
		}
	}
	if p == nil {
		return nil
	}
	if err := a.ws.ClosePanel(p); err != nil {
		return err
	}
	a.ws.Redraw()
	return nil
}

// zoom makes the node the visible root of its panel and focuses its first
// child. A leaf gets an empty child so that something on screen has focus.
func (a *actions) zoom(ctx command.Context, _ ...any) error {
	if ctx.Node == nil || ctx.Panel == nil {
		return nil
	}
	first := ctx.Node.Child(0)
	if first == nil {
		first = a.ws.Tree().NewNode("")
		if err := a.ws.Tree().SetParent(first, ctx.Node); err != nil {
			return err
		}
	}
	ctx.Panel.Push(ctx.Node)
	a.ws.Focus(first, ctx.Panel, -1)
	a.ws.Redraw()
	return nil
}

func (a *actions) zoomOut(ctx command.Context, _ ...any) error {
	if ctx.Panel == nil {
		return nil
	}
	root := ctx.Panel.Root()
	if !ctx.Panel.Pop() {
		return nil
	}
	if root.Alive() {
		a.ws.Focus(root, ctx.Panel, -1)
	}
	a.ws.Redraw()
	return nil
}
