package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/common"
)

// RoleFromToken reads the role claim out of a bearer token. The client never
// verifies the signature (it has no key material); the backend is the
// authority, this is only the local presentation of what it issued. The
// claim is looked up both at the top level and under user_metadata.
func RoleFromToken(token string) (models.Role, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", common.ErrInvalidToken
	}

	if s, ok := claims["role"].(string); ok {
		if role, ok := models.ParseRole(s); ok {
			return role, nil
		}
	}
	if md, ok := claims["user_metadata"].(map[string]any); ok {
		if s, ok := md["role"].(string); ok {
			if role, ok := models.ParseRole(s); ok {
				return role, nil
			}
		}
	}
	return "", nil
}

// tokenExpired reports whether the token carries an exp claim in the past.
// Unparseable tokens are not treated as expired here; opaque test tokens
// and future token formats stay usable until the backend rejects them.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
