package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	events    *mongo.Collection
	positions *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		events:    db.Collection(collectionEvents),
		positions: db.Collection(collectionPositions),
	}
}

// Create inserts a new event document.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.events.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// InsertPositions writes all position rows in one batch.
func (r *EventRepository) InsertPositions(ctx context.Context, positions []domain.Position) error {
	if len(positions) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(positions))
	for i := range positions {
		docs[i] = positions[i]
	}
	if _, err := r.positions.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert positions: %w", err)
	}
	return nil
}

// List returns every event, earliest event date first.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "event_date", Value: 1}}).
		SetProjection(bson.M{"name": 1, "event_date": 1, "location": 1, "organiser_id": 1})

	cur, err := r.events.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cur.Close(ctx)

	events := make([]domain.Event, 0)
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Event
	if err := r.events.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) ListPositions(ctx context.Context, eventID string) ([]domain.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.positions.Find(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("find positions: %w", err)
	}
	defer cur.Close(ctx)

	positions := make([]domain.Position, 0)
	if err := cur.All(ctx, &positions); err != nil {
		return nil, fmt.Errorf("decode positions: %w", err)
	}
	return positions, nil
}
