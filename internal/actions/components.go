package actions

import (
	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/component"
)

func (a *actions) addPage(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	ctx.Node.AddComponent(component.NewPage())
	a.ws.Redraw()
	return nil
}

func (a *actions) removePage(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	ctx.Node.RemoveComponent(component.KindPage)
	a.ws.Redraw()
	return nil
}

func (a *actions) addCheckbox(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	ctx.Node.AddComponent(component.NewCheckbox())
	a.ws.Redraw()
	return nil
}

func (a *actions) removeCheckbox(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	ctx.Node.RemoveComponent(component.KindCheckbox)
	a.ws.Redraw()
	return nil
}

// markDone cycles a node through no checkbox, unchecked and checked, and
// back to no checkbox.
func (a *actions) markDone(ctx command.Context, _ ...any) error {
	n := ctx.Node
	if n == nil {
		return nil
	}
	cb, ok := component.As[*component.Checkbox](n.Components(), component.KindCheckbox)
	switch {
	case !ok:
		n.AddComponent(component.NewCheckbox())
	case !cb.Checked:
		cb.Checked = true
		n.Changed()
	default:
		n.RemoveComponent(component.KindCheckbox)
	}
	a.ws.Redraw()
	return nil
}
