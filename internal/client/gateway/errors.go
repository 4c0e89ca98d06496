package gateway

import (
	"fmt"

	"github.com/sohaibmughall/crm-panel/internal/common"
)

// Machine-readable reasons carried by RemoteError.
const (
	ReasonTransport       = "transport"
	ReasonBackend         = "backend"
	ReasonNotFound        = "not_found"
	ReasonUnauthenticated = "unauthenticated"
)

// RemoteError is a backend or transport failure. Message is human-readable
// and safe to surface in a notification; Reason classifies the failure for
// programmatic handling.
type RemoteError struct {
	Reason  string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Reason
}

func (e *RemoteError) Unwrap() error { return e.Err }

func remoteErr(reason, format string, args ...any) *RemoteError {
	return &RemoteError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// errAuthRequired is returned when a write is attempted with no active
// session. It wraps common.ErrAuthRequired so callers can match it with
// errors.Is without importing this package's taxonomy.
func errAuthRequired() *RemoteError {
	return &RemoteError{
		Reason:  ReasonUnauthenticated,
		Message: common.ErrAuthRequired.Error(),
		Err:     common.ErrAuthRequired,
	}
}
