package actions

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/tree"
)

func (a *actions) copy(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	return a.cfg.clipboard(ctx.Node.Name())
}

// paste inserts one sibling per non-empty clipboard line after the node and
// focuses the last one. Nothing is inserted if the node was deleted or its
// panel closed while the clipboard was being read.
func (a *actions) paste(ctx command.Context, _ ...any) error {
	if ctx.Node == nil {
		return nil
	}
	pending := a.ws.Defer(ctx)
	text, err := a.cfg.readClipboard()
	if err != nil {
		return err
	}
	var insertErr error
	pending.Resume(func(ctx command.Context) {
		insertErr = a.insertLines(ctx, text)
	})
	return insertErr
}

func (a *actions) insertLines(ctx command.Context, text string) error {
	parent := ctx.Node.Parent()
	if parent == nil {
		return nil
	}
	after := ctx.Node
	var last *tree.Node
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n := a.ws.Tree().NewNode(line)
		if err := a.ws.Tree().SetParent(n, parent); err != nil {
			return err
		}
		a.ws.Tree().SetSiblingIndex(n, after.SiblingIndex()+1)
		after, last = n, n
	}
	if last == nil {
		return nil
	}
	a.ws.Redraw()
	a.ws.Focus(last, ctx.Panel, utf8.RuneCountInString(last.Name()))
	return nil
}
