package cli

import (
	"context"
	"os"

	"github.com/sohaibmughall/crm-panel/internal/client/services"
	"github.com/sohaibmughall/crm-panel/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for profile fields and a password twice, then creates an
// account. On success the user is signed in immediately.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.auth.SignUp(ctx, services.SignUpInput{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		printlnFn("Sign up failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	a.afterLogin(ctx)
	return nil
}

// Login prompts for email and password and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.auth.SignIn(ctx, services.SignInInput{Email: email, Password: string(password)})
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	a.afterLogin(ctx)
	return nil
}

// RequestOtp asks the backend to text a one-time code. The session is not
// touched; "verify" completes the flow.
func (a *App) RequestOtp(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone (+15551234567)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.RequestOtp(ctx, services.OtpRequestInput{Phone: phone}); err != nil {
		printlnFn("Could not send code:", err.Error())
		return err
	}

	printlnFn("Code sent. Run 'verify' once it arrives.")
	return nil
}

// VerifyOtp exchanges a received one-time code for a session.
func (a *App) VerifyOtp(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone (+15551234567)", os.Stdout)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter code", os.Stdout)
	if err != nil {
		return err
	}

	err = a.auth.VerifyOtp(ctx, services.OtpVerifyInput{Phone: phone, Code: code})
	if err != nil {
		printlnFn("Verification failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	a.afterLogin(ctx)
	return nil
}

// Logout clears the session and returns to the home screen.
func (a *App) Logout(ctx context.Context) error {
	a.auth.SignOut(ctx)
	a.route = "/"
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the current identity and role.
func (a *App) WhoAmI(ctx context.Context) error {
	cur := a.sessions.Current()
	if !cur.IsAuthenticated {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Logged in as", cur.User.Email, "role:", string(cur.Role))
	return nil
}

// afterLogin resumes the navigation that bounced to /login, if any.
func (a *App) afterLogin(ctx context.Context) {
	if a.returnTo == "" {
		return
	}
	target := a.returnTo
	a.returnTo = ""
	_ = a.Open(ctx, target)
}
