package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

type VendorService struct {
	vendors ports.VendorRepository
	events  ports.EventRepository
	storage ports.DocumentStorage
	logger  zerolog.Logger
}

func NewVendorService(vendors ports.VendorRepository, events ports.EventRepository, storage ports.DocumentStorage, logger zerolog.Logger) *VendorService {
	return &VendorService{vendors: vendors, events: events, storage: storage, logger: logger}
}

// GetProfile returns nil, nil when the vendor has not created a profile yet.
func (s *VendorService) GetProfile(ctx context.Context, vendorID string) (*domain.VendorProfile, error) {
	profile, err := s.vendors.GetProfile(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor profile: %w", err)
	}
	return profile, nil
}

// SaveProfile creates or replaces the editable profile fields. Verified is
// left untouched.
func (s *VendorService) SaveProfile(ctx context.Context, vendorID string, in ports.ProfileInput) (*domain.VendorProfile, error) {
	profile := &domain.VendorProfile{
		ID:           vendorID,
		Name:         strings.TrimSpace(in.Name),
		Contact:      strings.TrimSpace(in.Contact),
		BusinessType: strings.TrimSpace(in.BusinessType),
		Bio:          strings.TrimSpace(in.Bio),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.vendors.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("save vendor profile: %w", err)
	}

	saved, err := s.vendors.GetProfile(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("reload vendor profile: %w", err)
	}
	s.logger.Info().Str("vendor_id", vendorID).Msg("vendor profile saved")
	return saved, nil
}

// Apply registers the vendor's interest in an event. A repeated application
// returns domain.ErrAlreadyApplied.
func (s *VendorService) Apply(ctx context.Context, vendorID, eventID string) error {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return err
	}

	app := &domain.VendorApplication{
		ID:        uuid.NewString(),
		VendorID:  vendorID,
		EventID:   eventID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.vendors.InsertApplication(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			return err
		}
		return fmt.Errorf("apply for event: %w", err)
	}

	s.logger.Info().Str("vendor_id", vendorID).Str("event_id", eventID).Msg("vendor applied")
	return nil
}

func (s *VendorService) ListApplications(ctx context.Context, vendorID string) ([]string, error) {
	ids, err := s.vendors.ListApplicationEventIDs(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return ids, nil
}

// UploadDocument stores the file under <vendor>/<type>-<millis>-<name> and
// records it as pending verification.
func (s *VendorService) UploadDocument(ctx context.Context, in ports.UploadDocumentInput) (*domain.VendorDocument, error) {
	if !domain.ValidDocType(in.DocType) {
		return nil, domain.ErrInvalidDocType
	}

	now := time.Now().UTC()
	filePath := documentPath(in.VendorID, in.DocType, in.FileName, now)

	if err := s.storage.Upload(ctx, filePath, in.ContentType, in.Body); err != nil {
		s.logger.Error().Err(err).Str("vendor_id", in.VendorID).Msg("document upload failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc := &domain.VendorDocument{
		ID:         uuid.NewString(),
		VendorID:   in.VendorID,
		DocType:    in.DocType,
		FileURL:    filePath,
		Status:     domain.DocumentStatusPending,
		UploadedAt: now,
	}
	if err := s.vendors.InsertDocument(ctx, doc); err != nil {
		s.logger.Error().Err(err).Str("vendor_id", in.VendorID).Str("file", filePath).Msg("document row insert failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentNotSaved, err)
	}
	return doc, nil
}

func documentPath(vendorID, docType, fileName string, at time.Time) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("%s/%s-%d-%s", vendorID, docType, at.UnixMilli(), name)
}
