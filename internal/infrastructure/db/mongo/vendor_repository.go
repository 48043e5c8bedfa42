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

type VendorRepository struct {
	profiles     *mongo.Collection
	applications *mongo.Collection
	documents    *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{
		profiles:     db.Collection(collectionVendorProf),
		applications: db.Collection(collectionApplications),
		documents:    db.Collection(collectionDocuments),
	}
}

func (r *VendorRepository) GetProfile(ctx context.Context, vendorID string) (*domain.VendorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.VendorProfile
	if err := r.profiles.FindOne(ctx, bson.M{"_id": vendorID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find vendor profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile replaces the editable fields. verified is only initialised on insert.
func (r *VendorRepository) UpsertProfile(ctx context.Context, p *domain.VendorProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":          p.Name,
			"contact":       p.Contact,
			"business_type": p.BusinessType,
			"bio":           p.Bio,
			"updated_at":    p.UpdatedAt,
		},
		"$setOnInsert": bson.M{"verified": false},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.profiles.UpdateOne(ctx, bson.M{"_id": p.ID}, update, opts); err != nil {
		return fmt.Errorf("upsert vendor profile: %w", err)
	}
	return nil
}

// InsertApplication relies on the unique (vendor_id, event_id) index to
// reject repeats.
func (r *VendorRepository) InsertApplication(ctx context.Context, app *domain.VendorApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.applications.InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *VendorRepository) ListApplicationEventIDs(ctx context.Context, vendorID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"event_id": 1, "_id": 0})
	cur, err := r.applications.Find(ctx, bson.M{"vendor_id": vendorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		EventID string `bson:"event_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.EventID
	}
	return ids, nil
}

func (r *VendorRepository) InsertDocument(ctx context.Context, doc *domain.VendorDocument) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.documents.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert vendor document: %w", err)
	}
	return nil
}
