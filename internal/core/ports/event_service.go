package ports

import (
	"context"
	"time"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// PositionInput is a single row of the dynamic positions form.
type PositionInput struct {
	Title    string
	Quantity int
}

// CreateEventInput is the organiser's create-event form.
type CreateEventInput struct {
	OrganiserID string
	Name        string
	EventDate   time.Time
	Location    string
	Notes       string
	Positions   []PositionInput
}

// CreateEventResult reports the created event. PositionsErr is set when the
// event was stored but its positions were not.
type CreateEventResult struct {
	Event        *domain.Event
	Positions    []domain.Position
	PositionsErr error
}

// EventService covers the organiser and company dashboards.
type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*CreateEventResult, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListPositions(ctx context.Context, eventID string) ([]domain.Position, error)
}

// AuthEventInput is the DTO queued for the login audit trail.
type AuthEventInput struct {
	Email        string
	AccountID    string
	AssertedRole domain.Role
	Outcome      domain.AuthOutcome
	Timestamp    time.Time
}

// AuditService records login outcomes.
type AuditService interface {
	Record(ctx context.Context, in AuthEventInput) error
}
