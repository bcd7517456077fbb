package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ===============================
// ERROR TAXONOMY
// ===============================
//
// Every gateway failure is classified so the dispatch layer can pick the
// right notification path: transport failures and unexpected statuses get
// the generic "try again" treatment, 403 gets the specific not-authorized
// message, 401 escalates to the login flow, and 404 on the profile record
// is a soft condition handled by the caller.

// Kind names a class of gateway failure.
type Kind string

const (
	// KindTransport means the request never completed.
	KindTransport Kind = "TRANSPORT"
	// KindUnauthenticated is a 401: the session is absent or expired.
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	// KindForbidden is a 403: the server denied the operation.
	KindForbidden Kind = "FORBIDDEN"
	// KindNotFound is a 404.
	KindNotFound Kind = "NOT_FOUND"
	// KindRemote is any other non-2xx response.
	KindRemote Kind = "REMOTE"
)

// Error is a classified gateway failure.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gateway: %s: %s (caused by: %v)", e.Op, e.Kind, e.Cause)
	}
	if e.Status > 0 {
		return fmt.Sprintf("gateway: %s: %s (status %d)", e.Op, e.Kind, e.Status)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewTransportError creates an error for a request that never completed.
func NewTransportError(op string, cause error) *Error {
	return &Error{Kind: KindTransport, Op: op, Cause: cause}
}

// NewStatusError classifies a non-2xx response by status code.
func NewStatusError(op string, status int) *Error {
	kind := KindRemote
	switch status {
	case http.StatusUnauthorized:
		kind = KindUnauthenticated
	case http.StatusForbidden:
		kind = KindForbidden
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return &Error{Kind: kind, Op: op, Status: status}
}

// AsError extracts a gateway *Error from err.
func AsError(err error) (*Error, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}

// IsKind checks if an error is of a specific kind
func IsKind(err error, kind Kind) bool {
	if gerr, ok := AsError(err); ok {
		return gerr.Kind == kind
	}
	return false
}

// IsTransport checks if an error is a transport failure
func IsTransport(err error) bool {
	return IsKind(err, KindTransport)
}

// IsUnauthenticated checks if an error is a 401
func IsUnauthenticated(err error) bool {
	return IsKind(err, KindUnauthenticated)
}

// IsForbidden checks if an error is a 403
func IsForbidden(err error) bool {
	return IsKind(err, KindForbidden)
}

// IsNotFound checks if an error is a 404
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
