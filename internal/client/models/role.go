package models

// Role classifies what a signed-in account may do in the panel.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole maps a raw string to a known Role. Unknown or empty values
// return ("", false).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return Role(s), true
	}
	return "", false
}

// In reports whether r is a member of roles. An empty roles slice means
// no restriction and always matches.
func (r Role) In(roles []Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, x := range roles {
		if r == x {
			return true
		}
	}
	return false
}
