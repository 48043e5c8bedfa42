package service

import (
	"context"
	"fmt"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
}

// NewAuditService returns an AuditService that writes to repo.
func NewAuditService(repo ports.AuditRepository) ports.AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, in ports.AuthEventInput) error {
	event := &domain.AuthEvent{
		Email:        in.Email,
		AccountID:    in.AccountID,
		AssertedRole: in.AssertedRole,
		Outcome:      in.Outcome,
		Timestamp:    in.Timestamp,
	}
	if err := s.repo.InsertAuthEvent(ctx, event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}
	return nil
}
