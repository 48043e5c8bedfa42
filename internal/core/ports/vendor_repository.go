package ports

import (
	"context"
	"io"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// VendorRepository persists vendor-owned rows.
type VendorRepository interface {
	// GetProfile returns domain.ErrProfileNotFound when the vendor has not
	// created a profile yet.
	GetProfile(ctx context.Context, vendorID string) (*domain.VendorProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.VendorProfile) error
	// InsertApplication returns domain.ErrAlreadyApplied on a duplicate
	// (vendor, event) pair.
	InsertApplication(ctx context.Context, app *domain.VendorApplication) error
	ListApplicationEventIDs(ctx context.Context, vendorID string) ([]string, error)
	InsertDocument(ctx context.Context, doc *domain.VendorDocument) error
}

// DocumentStorage is the file bucket for verification documents.
type DocumentStorage interface {
	Upload(ctx context.Context, path, contentType string, r io.Reader) error
}
