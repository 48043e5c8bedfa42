package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// AuditRepository writes login attempts to the auth_events collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(collectionAuthEvents)}
}

// InsertAuthEvent persists a login attempt.
func (r *AuditRepository) InsertAuthEvent(ctx context.Context, event *domain.AuthEvent) error {
	doc := bson.M{
		"email":       event.Email,
		"outcome":     string(event.Outcome),
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.AccountID != "" {
		doc["account_id"] = event.AccountID
	}
	if event.AssertedRole != domain.RoleNone {
		doc["asserted_role"] = string(event.AssertedRole)
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
