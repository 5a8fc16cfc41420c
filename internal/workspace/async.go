package workspace

import (
	"github.com/atomicstack/treehouse/internal/command"
	"github.com/atomicstack/treehouse/internal/logging/events"
)

// Pending holds a command context captured before an asynchronous step.
type Pending struct {
	ws  *Workspace
	ctx command.Context
}

// Defer captures ctx so it can be re-validated after waiting on something.
func (w *Workspace) Defer(ctx command.Context) *Pending {
	return &Pending{ws: w, ctx: ctx}
}

// Context returns the captured context as it was taken.
func (p *Pending) Context() command.Context {
	return p.ctx
}

// Valid reports whether the captured node is still alive and the captured
// panel is still open.
func (p *Pending) Valid() bool {
	if p.ctx.Node != nil && !p.ctx.Node.Alive() {
		return false
	}
	if p.ctx.Panel != nil && !p.ws.PanelOpen(p.ctx.Panel) {
		return false
	}
	return true
}

// Resume runs fn with the captured context if it is still valid and reports
// whether fn ran.
func (p *Pending) Resume(fn func(command.Context)) bool {
	if !p.Valid() {
		nodeID := ""
		if p.ctx.Node != nil {
			nodeID = p.ctx.Node.ID()
		}
		events.Command.Stale(nodeID)
		return false
	}
	if fn != nil {
		fn(p.ctx)
	}
	return true
}
