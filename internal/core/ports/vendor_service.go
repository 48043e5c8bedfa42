package ports

import (
	"context"
	"io"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// ProfileInput holds the vendor-editable profile fields.
type ProfileInput struct {
	Name         string
	Contact      string
	BusinessType string
	Bio          string
}

// UploadDocumentInput describes one verification file upload.
type UploadDocumentInput struct {
	VendorID    string
	DocType     string
	FileName    string
	ContentType string
	Body        io.Reader
}

// VendorService covers the vendor dashboard.
type VendorService interface {
	// GetProfile returns nil without error when no profile exists yet.
	GetProfile(ctx context.Context, vendorID string) (*domain.VendorProfile, error)
	SaveProfile(ctx context.Context, vendorID string, in ProfileInput) (*domain.VendorProfile, error)
	Apply(ctx context.Context, vendorID, eventID string) error
	ListApplications(ctx context.Context, vendorID string) ([]string, error)
	UploadDocument(ctx context.Context, in UploadDocumentInput) (*domain.VendorDocument, error)
}
