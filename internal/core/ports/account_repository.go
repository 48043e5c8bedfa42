package ports

import (
	"context"
	"time"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// AccountRepository persists identity records.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

// ProfileRepository writes the rows created alongside an account at signup.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	// CreateRoleRecord inserts into the vendors, companies or organisers table
	// depending on role, seeding it with the display name.
	CreateRoleRecord(ctx context.Context, role domain.Role, id, displayName, email string) error
}

// SessionStore tracks live sessions so that sign-out invalidates a token
// before it expires.
type SessionStore interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	// AccountID returns the account bound to sessionID, or domain.ErrNoSession.
	AccountID(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
