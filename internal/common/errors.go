// Package common contains shared constants and sentinel errors used across
// the panel client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrAuthRequired is returned when a write is attempted with no active
	// session. It is checked before the request is issued, never inferred
	// from a failed write.
	ErrAuthRequired = errors.New("no active session")

	// ErrNotFound is returned when the backend reports no matching row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken is returned when the bearer token cannot be parsed.
	ErrInvalidToken = errors.New("invalid token")
)
