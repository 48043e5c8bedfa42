package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthentication = errors.New("authentication failed")
	ErrMissingRole    = errors.New("account has no role assigned, please contact support")
	ErrRoleMismatch   = errors.New("role mismatch")
	ErrNoSession      = errors.New("no active session")

	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrWeakPassword       = errors.New("password too short")
	ErrForbidden          = errors.New("access forbidden")
	ErrProfileNotFound    = errors.New("profile not found")

	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEvent       = errors.New("event name, date and location are required")
	ErrAlreadyApplied     = errors.New("already applied for event")
	ErrInvalidDocType     = errors.New("invalid document type")
	ErrUploadFailed       = errors.New("document upload failed")
	ErrDocumentNotSaved   = errors.New("document record insert failed")
	ErrSubmissionInFlight = errors.New("a submission for this form is already in progress")
)

// AuthenticationError is returned when credentials are rejected, no session
// results, or the identity backend could not be reached. Message is shown to
// the user as-is.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// NewAuthenticationError wraps cause, reusing its text as the user-facing message.
func NewAuthenticationError(cause error) *AuthenticationError {
	msg := "Unknown error"
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &AuthenticationError{Message: msg, Err: cause}
}

// RoleMismatchError is returned when the role chosen on the login form differs
// from the role stored on the account. The session has already been signed out.
type RoleMismatchError struct {
	Asserted  Role
	Persisted Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("Account is registered as %s.", e.Persisted)
}

func (e *RoleMismatchError) Is(target error) bool {
	return target == ErrRoleMismatch
}
