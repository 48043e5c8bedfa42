package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

const (
	collectionAccounts     = "accounts"
	collectionProfiles     = "profiles"
	collectionVendors      = "vendors"
	collectionCompanies    = "companies"
	collectionOrganisers   = "organisers"
	collectionEvents       = "events"
	collectionPositions    = "event_positions"
	collectionVendorProf   = "vendor_profiles"
	collectionApplications = "vendor_applications"
	collectionDocuments    = "vendor_documents"
	collectionAuthEvents   = "auth_events"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// Duplicate-key detection for emails and applications depends on them.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionAccounts: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionEvents: {
			{Keys: bson.D{{Key: "event_date", Value: 1}}},
			{Keys: bson.D{{Key: "organiser_id", Value: 1}}},
		},
		collectionPositions: {
			{Keys: bson.D{{Key: "event_id", Value: 1}}},
		},
		collectionApplications: {
			{
				Keys:    bson.D{{Key: "vendor_id", Value: 1}, {Key: "event_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		collectionDocuments: {
			{Keys: bson.D{{Key: "vendor_id", Value: 1}}},
		},
		collectionAuthEvents: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
