package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// ProfileRepository writes the signup-time rows: one profiles row per account
// and one row in the table matching the account's role.
type ProfileRepository struct {
	db *mongo.Database
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":       p.ID,
		"full_name": p.FullName,
		"email":     p.Email,
		"role":      string(p.Role),
	}
	if _, err := r.db.Collection(collectionProfiles).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) CreateRoleRecord(ctx context.Context, role domain.Role, id, displayName, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		coll string
		doc  bson.M
	)
	switch role {
	case domain.RoleVendor:
		coll = collectionVendors
		doc = bson.M{"_id": id, "full_name": displayName, "email": email}
	case domain.RoleCompany:
		coll = collectionCompanies
		doc = bson.M{"_id": id, "company_name": displayName, "company_type": nil, "headquarters": nil}
	case domain.RoleOrganiser:
		coll = collectionOrganisers
		doc = bson.M{"_id": id, "organization_name": displayName, "organization_type": nil, "location": nil}
	default:
		return domain.ErrInvalidRole
	}

	if _, err := r.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s row: %w", coll, err)
	}
	return nil
}
