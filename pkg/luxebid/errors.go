package luxebid

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/luxebid/luxebid/pkg/model"
)

// Error types for common failure scenarios.
var (
	// ErrNotAuthenticated indicates an operation that requires a
	// credential was attempted without one.
	ErrNotAuthenticated = errors.New("not authenticated: no credential configured")

	// ErrSessionRejected indicates the backend rejected the current
	// credential and the local session has been cleared.
	ErrSessionRejected = errors.New("session rejected by backend")
)

// Error wraps a LuxeBid API failure with the operation that produced it.
type Error struct {
	// Op is the operation that failed (e.g. "login", "list auctions").
	Op string

	// Err is the underlying error, typically a *model.APIError for
	// backend-reported failures or a transport error otherwise.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// wrap adds operation context to an error, preserving nil.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// apiError extracts the *model.APIError from an error chain, or nil.
func apiError(err error) *model.APIError {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsAuthError reports whether the error is an authentication or
// authorization failure (401-class response, missing credential, or a
// rejected session).
func IsAuthError(err error) bool {
	if e := apiError(err); e != nil {
		return e.Status == http.StatusUnauthorized
	}
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrSessionRejected)
}

// IsNotFound reports whether the error is a 404 response. Callers that
// expect a list treat this as a valid empty state, not a failure.
func IsNotFound(err error) bool {
	if e := apiError(err); e != nil {
		return e.Status == http.StatusNotFound
	}
	return false
}

// IsValidation reports whether the error carries field-level
// validation messages.
func IsValidation(err error) bool {
	e := apiError(err)
	return e != nil && len(e.Fields) > 0
}

// FieldMessages returns the validation messages for a field if the
// error carries any, or nil.
func FieldMessages(err error, field string) []string {
	if e := apiError(err); e != nil {
		return e.FieldMessages(field)
	}
	return nil
}
