package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventstaff/hospitality-hub/internal/auth"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

// IdentityService implements ports.IdentityService on top of the account
// store, a session store and signed access tokens.
type IdentityService struct {
	accounts   ports.AccountRepository
	sessions   ports.SessionStore
	tokens     *auth.TokenManager
	sessionTTL time.Duration
}

func NewIdentityService(accounts ports.AccountRepository, sessions ports.SessionStore, tokens *auth.TokenManager, sessionTTL time.Duration) *IdentityService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &IdentityService{accounts: accounts, sessions: sessions, tokens: tokens, sessionTTL: sessionTTL}
}

func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*domain.Session, *domain.Account, error) {
	if email == "" || password == "" {
		return nil, nil, domain.NewAuthenticationError(domain.ErrInvalidCredentials)
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, nil, domain.NewAuthenticationError(domain.ErrInvalidCredentials)
		}
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.NewAuthenticationError(domain.ErrInvalidCredentials)
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().UTC().Add(s.sessionTTL)

	token, err := s.tokens.Issue(account.ID, account.Email, string(account.Role), sessionID, expiresAt)
	if err != nil {
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}
	if err := s.sessions.Save(ctx, sessionID, account.ID, s.sessionTTL); err != nil {
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}

	return &domain.Session{
		ID:        sessionID,
		AccountID: account.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, account, nil
}

func (s *IdentityService) CurrentAccount(ctx context.Context, session *domain.Session) (*domain.Account, error) {
	if session == nil || session.ID == "" {
		return nil, domain.ErrNoSession
	}

	accountID, err := s.sessions.AccountID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if session.AccountID != "" && session.AccountID != accountID {
		return nil, domain.ErrNoSession
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("current account: %w", err)
	}
	return account, nil
}

func (s *IdentityService) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
