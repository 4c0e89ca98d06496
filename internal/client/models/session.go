// Package models defines client-side data models used by the admin panel.
package models

// User is the caller's own identity as reported by the auth backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// Session is the local record of the currently authenticated identity,
// credential, and role.
//
// Invariant: IsAuthenticated is true iff User and Token are both set.
// The session store enforces this on every transition; code elsewhere
// should treat the field as read-only.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	Role            Role   `json:"role"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

// Authenticated reports whether the session satisfies the authentication
// invariant, independent of the stored flag.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}
