package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
)

// AuthResult is a successful authentication: the bearer token plus the
// identity and role the backend reported. Role may be empty when the
// account carries no role claim; the session store then derives it from
// the token.
type AuthResult struct {
	Token string
	User  models.User
	Role  models.Role
}

type SignUpParams struct {
	Email    string
	Password string
	Name     string
}

// authResponse is the wire shape of the auth API's session payload.
type authResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		UserMetadata struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"user_metadata"`
	} `json:"user"`
}

func (r authResponse) result() *AuthResult {
	role, _ := models.ParseRole(r.User.UserMetadata.Role)
	return &AuthResult{
		Token: r.AccessToken,
		User: models.User{
			ID:    r.User.ID,
			Email: r.User.Email,
			Phone: r.User.Phone,
			Name:  r.User.UserMetadata.Name,
		},
		Role: role,
	}
}

// SignUp creates an account with profile fields and returns the new session.
func (c *Client) SignUp(ctx context.Context, p SignUpParams) (*AuthResult, error) {
	body := map[string]any{
		"email":    p.Email,
		"password": p.Password,
		"data":     map[string]any{"name": p.Name},
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.result(), nil
}

// SignInWithPassword authenticates with email and password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]any{"email": email, "password": password}
	query := url.Values{"grant_type": {"password"}}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.result(), nil
}

// RequestOtp asks the backend to send a one-time code to phone. Verification
// is a separate call (VerifyOtp); the two phases are deliberately split.
func (c *Client) RequestOtp(ctx context.Context, phone string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/otp", nil, nil, map[string]any{"phone": phone}, nil)
}

// VerifyOtp exchanges a received one-time code for a session.
func (c *Client) VerifyOtp(ctx context.Context, phone, code string) (*AuthResult, error) {
	body := map[string]any{"phone": phone, "token": code, "type": "sms"}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/verify", nil, nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.result(), nil
}

// SignOut revokes the given session credential on the backend. The token is
// passed explicitly: the session store clears local state first, so by the
// time this call runs the token source no longer carries it. Failure here
// must never block the local clear.
func (c *Client) SignOut(ctx context.Context, token string) error {
	headers := map[string]string{"Authorization": "Bearer " + token}
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, headers, nil, nil)
}
