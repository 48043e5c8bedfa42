package ports

import (
	"context"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// IdentityService is the boundary to the authentication backend. Session state
// is always handed in explicitly.
type IdentityService interface {
	// Authenticate checks credentials and opens a session. Rejections come back
	// as *domain.AuthenticationError.
	Authenticate(ctx context.Context, email, password string) (*domain.Session, *domain.Account, error)
	// CurrentAccount returns the account for a live session, or domain.ErrNoSession.
	CurrentAccount(ctx context.Context, session *domain.Session) (*domain.Account, error)
	SignOut(ctx context.Context, session *domain.Session) error
}

// LoginInput is what the login form submits. AssertedRole is advisory only.
type LoginInput struct {
	Email        string
	Password     string
	AssertedRole domain.Role
}

// RouteResult is a successful login resolved to a dashboard.
type RouteResult struct {
	Session     *domain.Session
	Account     *domain.Account
	Destination domain.Destination
}

// SessionRouter resolves a login attempt to exactly one destination.
type SessionRouter interface {
	Route(ctx context.Context, in LoginInput) (*RouteResult, error)
}

// SignupInput carries the signup form.
type SignupInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// SignupService creates accounts together with their profile rows.
type SignupService interface {
	Register(ctx context.Context, in SignupInput) (*domain.Account, error)
}
