package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 8

// SignupService creates an account plus its profile and role rows.
type SignupService struct {
	accounts ports.AccountRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewSignupService(accounts ports.AccountRepository, profiles ports.ProfileRepository, log zerolog.Logger) *SignupService {
	return &SignupService{accounts: accounts, profiles: profiles, log: log}
}

// Register creates the account. Profile and role rows are written afterwards;
// a failure there is logged and the account is kept.
func (s *SignupService) Register(ctx context.Context, in ports.SignupInput) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)

	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if email == "" || fullName == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account, err := s.accounts.Create(ctx, &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		DisplayName:  fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{ID: account.ID, FullName: fullName, Email: email, Role: in.Role}
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID).Msg("failed to create profile row")
	}
	if err := s.profiles.CreateRoleRecord(ctx, in.Role, account.ID, fullName, email); err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID).Str("role", string(in.Role)).Msg("failed to create role row")
	}

	s.log.Info().Str("account_id", account.ID).Str("role", string(in.Role)).Msg("account registered")
	return account, nil
}
