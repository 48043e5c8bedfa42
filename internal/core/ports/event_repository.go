package ports

import (
	"context"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// EventRepository persists events and their staffing positions.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	InsertPositions(ctx context.Context, positions []domain.Position) error
	// List returns all events ordered by event date, earliest first.
	List(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	ListPositions(ctx context.Context, eventID string) ([]domain.Position, error)
}

// AuditRepository stores the login audit trail.
type AuditRepository interface {
	InsertAuthEvent(ctx context.Context, event *domain.AuthEvent) error
}
