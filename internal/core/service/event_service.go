package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

// CreateEvent stores the event first and its positions second. A positions
// failure leaves the event in place and is reported on the result.
func (s *eventService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*ports.CreateEventResult, error) {
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	if name == "" || location == "" || in.EventDate.IsZero() {
		return nil, domain.ErrInvalidEvent
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		OrganiserID: in.OrganiserID,
		Name:        name,
		EventDate:   in.EventDate.UTC(),
		Location:    location,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	result := &ports.CreateEventResult{Event: event}

	positions := buildPositions(event.ID, in.Positions)
	if len(positions) > 0 {
		if err := s.repo.InsertPositions(ctx, positions); err != nil {
			s.log.Warn().Err(err).Str("event_id", event.ID).Msg("event created, positions insert failed")
			result.PositionsErr = err
		} else {
			result.Positions = positions
		}
	}

	s.log.Info().
		Str("event_id", event.ID).
		Str("organiser_id", in.OrganiserID).
		Int("positions", len(result.Positions)).
		Msg("event created")

	return result, nil
}

// buildPositions drops rows with a blank title, trims titles and clamps
// quantity to at least one.
func buildPositions(eventID string, rows []ports.PositionInput) []domain.Position {
	out := make([]domain.Position, 0, len(rows))
	for _, p := range rows {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			continue
		}
		qty := p.Quantity
		if qty < 1 {
			qty = 1
		}
		out = append(out, domain.Position{
			ID:       uuid.NewString(),
			EventID:  eventID,
			Title:    title,
			Quantity: qty,
		})
	}
	return out
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListPositions(ctx context.Context, eventID string) ([]domain.Position, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	positions, err := s.repo.ListPositions(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	return positions, nil
}
