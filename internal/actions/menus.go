package actions

import (
	"context"
	"fmt"

	"github.com/atomicstack/treehouse/internal/logging"
	"github.com/atomicstack/treehouse/internal/menu"
)

func (a *actions) registerMenus() {
	a.ws.Menus().Register("node", []menu.Item{
		{Command: "zoom"},
		{Command: "new-panel"},
		{Command: "indent"},
		{Command: "outdent"},
		{Command: "delete"},
		{Command: "add-checkbox"},
		{Command: "remove-checkbox"},
		{Command: "mark-done"},
		{Command: "add-page"},
		{Command: "remove-page"},
		{Command: "generate-random"},
	})

	signedIn := a.ws.Authenticated
	signedOut := func() bool { return !a.ws.Authenticated() }
	a.ws.Menus().Register("settings", []menu.Item{
		{TitleFunc: a.userTitle, Disabled: true, When: signedIn},
		{Title: "Log in", When: signedOut, OnClick: a.login},
		{Title: "Reset demo", When: signedOut, OnClick: a.resetDemo},
		{Title: "Submit issue", OnClick: a.submitIssue},
		{Title: "Log out", When: signedIn, OnClick: a.logout},
	})
}

func (a *actions) userTitle() string {
	auth, ok := a.ws.Authenticator()
	if !ok {
		return ""
	}
	return fmt.Sprintf("signed in as %s", auth.CurrentUser())
}

func (a *actions) login() {
	if auth, ok := a.ws.Authenticator(); ok {
		logging.Error(auth.Login())
		a.ws.Redraw()
	}
}

func (a *actions) logout() {
	if auth, ok := a.ws.Authenticator(); ok {
		logging.Error(auth.Logout())
		a.ws.Redraw()
	}
}

func (a *actions) resetDemo() {
	logging.Error(a.ws.Reset(context.Background()))
	a.ws.Redraw()
}

// submitIssue puts the issue tracker URL on the clipboard.
func (a *actions) submitIssue() {
	logging.Error(a.cfg.clipboard(IssueURL))
}
