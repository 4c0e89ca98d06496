package models

// ManagedUser is an administrative view over another account, shown on the
// user-management screen. It is distinct from User (the caller's own
// identity). The collection is local-only: no backend fetch exists for it.
type ManagedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u ManagedUser) Identity() int64 { return u.ID }
