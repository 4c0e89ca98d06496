package services

import (
	"context"

	"github.com/sohaibmughall/crm-panel/internal/client/gateway"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// AuthGateway is the slice of the gateway the auth service needs.
// *gateway.Client satisfies it.
type AuthGateway interface {
	SignUp(ctx context.Context, p gateway.SignUpParams) (*gateway.AuthResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*gateway.AuthResult, error)
	RequestOtp(ctx context.Context, phone string) error
	VerifyOtp(ctx context.Context, phone, code string) (*gateway.AuthResult, error)
}

// sessionStore is the session mutation surface the auth service drives.
// *session.Store satisfies it.
type sessionStore interface {
	Login(ctx context.Context, user *models.User, token string, role models.Role) error
	Logout(ctx context.Context)
	Current() models.Session
}

// AuthService runs the sign-up, sign-in, and sign-out flows and records
// their outcomes in the session store.
type AuthService struct {
	gw       AuthGateway
	sessions sessionStore
	log      logging.Logger
}

func NewAuthService(gw AuthGateway, sessions sessionStore, log logging.Logger) *AuthService {
	return &AuthService{gw: gw, sessions: sessions, log: log}
}

type SignUpInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// SignUp creates an account and signs the new user in. The password
// confirmation is checked locally before anything is sent.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) error {
	if err := check(in); err != nil {
		return err
	}

	res, err := s.gw.SignUp(ctx, gateway.SignUpParams{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "signed up", "user", res.User.ID)
	return s.sessions.Login(ctx, &res.User, res.Token, res.Role)
}

type SignInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (s *AuthService) SignIn(ctx context.Context, in SignInInput) error {
	if err := check(in); err != nil {
		return err
	}

	res, err := s.gw.SignInWithPassword(ctx, in.Email, in.Password)
	if err != nil {
		return err
	}

	s.log.Info(ctx, "signed in", "user", res.User.ID, "role", res.Role)
	return s.sessions.Login(ctx, &res.User, res.Token, res.Role)
}

type OtpRequestInput struct {
	Phone string `validate:"required,e164"`
}

// RequestOtp asks the backend to send a one-time code. It never signs the
// user in; VerifyOtp completes the flow.
func (s *AuthService) RequestOtp(ctx context.Context, in OtpRequestInput) error {
	if err := check(in); err != nil {
		return err
	}
	return s.gw.RequestOtp(ctx, in.Phone)
}

type OtpVerifyInput struct {
	Phone string `validate:"required,e164"`
	Code  string `validate:"required"`
}

func (s *AuthService) VerifyOtp(ctx context.Context, in OtpVerifyInput) error {
	if err := check(in); err != nil {
		return err
	}

	res, err := s.gw.VerifyOtp(ctx, in.Phone, in.Code)
	if err != nil {
		return err
	}

	s.log.Info(ctx, "signed in via otp", "user", res.User.ID)
	return s.sessions.Login(ctx, &res.User, res.Token, res.Role)
}

// SignOut clears the session. The remote revocation is handled inside the
// store and never blocks this call.
func (s *AuthService) SignOut(ctx context.Context) {
	s.sessions.Logout(ctx)
}

// Current exposes the session snapshot for screens that render identity.
func (s *AuthService) Current() models.Session {
	return s.sessions.Current()
}
