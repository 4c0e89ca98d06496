package guard

import (
	"strings"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
)

// Route is one navigable path pattern. Patterns support ":param" segments
// and a trailing "/*" wildcard. A route with no roles admits any
// authenticated session; Public routes skip the session check entirely.
type Route struct {
	Pattern string
	Public  bool
	Roles   []models.Role
}

// Routes is the panel's navigation table.
var Routes = []Route{
	{Pattern: "/login", Public: true},
	{Pattern: "/signup", Public: true},
	{Pattern: "/"},
	{Pattern: "/customers"},
	{Pattern: "/customers/new"},
	{Pattern: "/customers/edit/:id"},
	{Pattern: "/content/*"},
	{Pattern: "/media"},
	{Pattern: "/users", Roles: []models.Role{models.RoleAdmin}},
	{Pattern: "/settings"},
}

// Resolve finds the first route matching path.
func Resolve(path string) (Route, bool) {
	for _, r := range Routes {
		if matches(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

func matches(pattern, path string) bool {
	if pattern == path {
		return true
	}

	if strings.HasSuffix(pattern, "/*") {
		base := strings.TrimSuffix(pattern, "/*")
		return path == base || strings.HasPrefix(path, base+"/")
	}

	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
