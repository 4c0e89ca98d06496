package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/common"
)

func TestRoleFromToken_TopLevelClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"role": "admin"})
	role, err := RoleFromToken(tok)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, role)
}

func TestRoleFromToken_UserMetadataClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"user_metadata": map[string]any{"role": "viewer"}})
	role, err := RoleFromToken(tok)
	require.NoError(t, err)
	require.Equal(t, models.RoleViewer, role)
}

func TestRoleFromToken_NoRoleClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "u-1"})
	role, err := RoleFromToken(tok)
	require.NoError(t, err)
	require.Equal(t, models.Role(""), role)
}

func TestRoleFromToken_UnknownRoleIgnored(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"role": "superuser"})
	role, err := RoleFromToken(tok)
	require.NoError(t, err)
	require.Equal(t, models.Role(""), role)
}

func TestRoleFromToken_Malformed(t *testing.T) {
	_, err := RoleFromToken("not-a-jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	past := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	require.True(t, tokenExpired(past))

	future := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	require.False(t, tokenExpired(future))

	noExp := signedToken(t, jwt.MapClaims{"sub": "u-1"})
	require.False(t, tokenExpired(noExp))

	// opaque tokens are not treated as expired locally
	require.False(t, tokenExpired("opaque-token"))
}
