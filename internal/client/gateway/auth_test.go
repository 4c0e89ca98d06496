package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
)

const sessionJSON = `{
  "access_token": "jwt-token",
  "user": {
    "id": "u-42",
    "email": "a@b.com",
    "phone": "",
    "user_metadata": {"name": "Alice", "role": "editor"}
  }
}`

func TestSignInWithPassword(t *testing.T) {
	var gotPath, gotGrant string
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGrant = r.URL.Query().Get("grant_type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, sessionJSON)
	}, staticTokens{})

	res, err := c.SignInWithPassword(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	require.Equal(t, "/auth/v1/token", gotPath)
	require.Equal(t, "password", gotGrant)
	require.Equal(t, "a@b.com", gotBody["email"])
	require.Equal(t, "secret", gotBody["password"])

	require.Equal(t, "jwt-token", res.Token)
	require.Equal(t, "u-42", res.User.ID)
	require.Equal(t, "Alice", res.User.Name)
	require.Equal(t, models.RoleEditor, res.Role)
}

func TestSignUp_SendsProfileFields(t *testing.T) {
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, sessionJSON)
	}, staticTokens{})

	_, err := c.SignUp(context.Background(), SignUpParams{Email: "a@b.com", Password: "secret", Name: "Alice"})
	require.NoError(t, err)

	data, ok := gotBody["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Alice", data["name"])
}

func TestSignIn_BackendErrorSurfacesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error_description":"Invalid login credentials"}`)
	}, staticTokens{})

	_, err := c.SignInWithPassword(context.Background(), "a@b.com", "wrong")

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "Invalid login credentials", re.Message)
}

func TestOtp_TwoPhases(t *testing.T) {
	var paths []string
	var verifyBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/auth/v1/otp":
			w.WriteHeader(http.StatusOK)
		case "/auth/v1/verify":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&verifyBody))
			io.WriteString(w, sessionJSON)
		}
	}, staticTokens{})

	require.NoError(t, c.RequestOtp(context.Background(), "+15550100"))

	res, err := c.VerifyOtp(context.Background(), "+15550100", "123456")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", res.Token)

	require.Equal(t, []string{"/auth/v1/otp", "/auth/v1/verify"}, paths)
	require.Equal(t, "+15550100", verifyBody["phone"])
	require.Equal(t, "123456", verifyBody["token"])
	require.Equal(t, "sms", verifyBody["type"])
}

func TestSignOut_UsesSessionBearer(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, staticTokens{})

	require.NoError(t, c.SignOut(context.Background(), "sess"))
	require.Equal(t, "Bearer sess", gotAuth)
}

func TestParseRoleFallback_UnknownRoleIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"access_token":"t","user":{"id":"u","user_metadata":{"role":"superuser"}}}`)
	}, staticTokens{})

	res, err := c.SignInWithPassword(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, models.Role(""), res.Role)
}
