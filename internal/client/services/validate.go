package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a client-side input failure, raised before any remote
// call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var validate = validator.New(validator.WithRequiredStructEnabled())

// check validates a tagged input struct and converts the first failure into
// a ValidationError with a message fit for a notification.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return &ValidationError{Field: f.Field(), Message: messageFor(f)}
	}
	return err
}

func messageFor(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", f.Field())
	case "e164":
		return fmt.Sprintf("%s must be a phone number in international format", f.Field())
	case "eqfield":
		return "passwords do not match"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", f.Field(), f.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f.Field(), f.Param())
	}
	return fmt.Sprintf("%s is invalid", f.Field())
}
