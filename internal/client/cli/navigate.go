package cli

import (
	"context"

	"github.com/sohaibmughall/crm-panel/internal/client/guard"
)

// Open navigates to a screen. The guard is re-evaluated on every call with
// the session as it is right now; a screen admitted a minute ago can bounce
// to /login after a logout.
func (a *App) Open(ctx context.Context, path string) error {
	res := guard.ForPath(a.sessions.Current(), path)

	switch res.Decision {
	case guard.Admit:
		a.route = path
		printlnFn("-- " + path + " --")
	case guard.RedirectToLogin:
		a.route = "/login"
		a.returnTo = res.ReturnTo
		printlnFn("Please log in first (you will return to " + res.ReturnTo + ")")
	case guard.RedirectToHome:
		a.route = "/"
		printlnFn("Not available, back to the dashboard")
	}
	return nil
}
