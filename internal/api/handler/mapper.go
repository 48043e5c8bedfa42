package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

const eventDateLayout = "2006-01-02"

// --- Request → Service input ---

// normalizeRole runs before validation so " Vendor" matches the oneof tag.
func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

func toSignupInput(req signupRequest) ports.SignupInput {
	return ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
	}
}

func toLoginInput(req loginRequest) ports.LoginInput {
	return ports.LoginInput{
		Email:        req.Email,
		Password:     req.Password,
		AssertedRole: domain.Role(req.Role),
	}
}

// toCreateEventInput assumes EventDate already passed validation.
func toCreateEventInput(req createEventRequest, organiserID string) (ports.CreateEventInput, error) {
	date, err := time.Parse(eventDateLayout, req.EventDate)
	if err != nil {
		return ports.CreateEventInput{}, err
	}
	positions := make([]ports.PositionInput, 0, len(req.Positions))
	for _, p := range req.Positions {
		positions = append(positions, ports.PositionInput{Title: p.Title, Quantity: p.Quantity})
	}
	return ports.CreateEventInput{
		OrganiserID: organiserID,
		Name:        req.Name,
		EventDate:   date,
		Location:    req.Location,
		Notes:       req.Notes,
		Positions:   positions,
	}, nil
}

func toProfileInput(req profileRequest) ports.ProfileInput {
	return ports.ProfileInput{
		Name:         req.Name,
		Contact:      req.Contact,
		BusinessType: req.BusinessType,
		Bio:          req.Bio,
	}
}

// --- Errors → metric labels ---

func loginOutcome(err error) domain.AuthOutcome {
	switch {
	case err == nil:
		return domain.AuthOutcomeSuccess
	case errors.Is(err, domain.ErrRoleMismatch):
		return domain.AuthOutcomeRoleMismatch
	case errors.Is(err, domain.ErrMissingRole):
		return domain.AuthOutcomeMissingRole
	default:
		return domain.AuthOutcomeFailed
	}
}
