// Package guard decides route admission from session state and role. The
// decision is a pure function of its inputs and must be re-evaluated on
// every navigation: a logout between navigations revokes access on the next
// evaluation, nothing is cached here.
package guard

import (
	"github.com/sohaibmughall/crm-panel/internal/client/models"
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	Admit Decision = iota
	RedirectToLogin
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	}
	return "unknown"
}

// Result carries the decision plus, for login redirects, the originally
// requested path so login can return the user to it.
type Result struct {
	Decision Decision
	ReturnTo string
}

// Evaluate applies the admission rules for a navigation to path:
//
//  1. Unauthenticated sessions are redirected to login, preserving path,
//     regardless of the required roles.
//  2. Authenticated sessions lacking a required role are redirected home.
//  3. Otherwise the navigation is admitted.
//
// An empty required set means any authenticated session is admitted.
func Evaluate(s models.Session, required []models.Role, path string) Result {
	if !s.IsAuthenticated {
		return Result{Decision: RedirectToLogin, ReturnTo: path}
	}
	if len(required) > 0 && !s.Role.In(required) {
		return Result{Decision: RedirectToHome}
	}
	return Result{Decision: Admit}
}

// ForPath resolves path against the route table and evaluates admission.
// Public routes are always admitted; unknown paths redirect home, matching
// the panel's catch-all route.
func ForPath(s models.Session, path string) Result {
	route, ok := Resolve(path)
	if !ok {
		return Result{Decision: RedirectToHome}
	}
	if route.Public {
		return Result{Decision: Admit}
	}
	return Evaluate(s, route.Roles, path)
}
