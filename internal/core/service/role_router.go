package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

// AuditSink receives login outcomes. Enqueue must not wait on persistence.
type AuditSink interface {
	Enqueue(event ports.AuthEventInput)
}

// RoleRouter authenticates a login attempt and resolves it to one dashboard.
// The role on the account is authoritative; the asserted role only filters.
type RoleRouter struct {
	identity ports.IdentityService
	audit    AuditSink
	log      zerolog.Logger
}

// NewRoleRouter returns a RoleRouter. audit may be nil.
func NewRoleRouter(identity ports.IdentityService, audit AuditSink, log zerolog.Logger) *RoleRouter {
	return &RoleRouter{identity: identity, audit: audit, log: log}
}

// Route runs one login attempt. Errors are *domain.AuthenticationError,
// domain.ErrMissingRole or *domain.RoleMismatchError; none are retried.
func (r *RoleRouter) Route(ctx context.Context, in ports.LoginInput) (*ports.RouteResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	session, account, err := r.identity.Authenticate(ctx, email, in.Password)
	if err != nil {
		r.record(email, "", in.AssertedRole, domain.AuthOutcomeFailed)
		return nil, asAuthenticationError(err)
	}
	if session == nil || account == nil {
		r.record(email, "", in.AssertedRole, domain.AuthOutcomeFailed)
		return nil, &domain.AuthenticationError{Message: domain.ErrNoSession.Error(), Err: domain.ErrNoSession}
	}

	if account.Role == domain.RoleNone {
		r.record(email, account.ID, in.AssertedRole, domain.AuthOutcomeMissingRole)
		return nil, domain.ErrMissingRole
	}

	if in.AssertedRole != domain.RoleNone && in.AssertedRole != account.Role {
		// The session must be gone before the caller sees the error.
		if err := r.identity.SignOut(context.WithoutCancel(ctx), session); err != nil {
			r.log.Warn().Err(err).Str("account_id", account.ID).Msg("sign-out after role mismatch failed")
		}
		r.record(email, account.ID, in.AssertedRole, domain.AuthOutcomeRoleMismatch)
		return nil, &domain.RoleMismatchError{Asserted: in.AssertedRole, Persisted: account.Role}
	}

	r.record(email, account.ID, in.AssertedRole, domain.AuthOutcomeSuccess)
	return &ports.RouteResult{
		Session:     session,
		Account:     account,
		Destination: domain.DestinationFor(account.Role),
	}, nil
}

// asAuthenticationError folds transport failures into the same taxonomy as
// rejected credentials.
func asAuthenticationError(err error) error {
	var authErr *domain.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr
	}
	return &domain.AuthenticationError{Message: "authentication service unavailable", Err: err}
}

func (r *RoleRouter) record(email, accountID string, asserted domain.Role, outcome domain.AuthOutcome) {
	if r.audit == nil {
		return
	}
	r.audit.Enqueue(ports.AuthEventInput{
		Email:        email,
		AccountID:    accountID,
		AssertedRole: asserted,
		Outcome:      outcome,
		Timestamp:    time.Now().UTC(),
	})
}
