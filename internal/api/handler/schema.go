package handler

import (
	"time"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"      validate:"required,oneof=vendor company organiser"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"omitempty,oneof=vendor company organiser"`
}

type loginResponse struct {
	Token       string             `json:"token"`
	ExpiresAt   time.Time          `json:"expires_at"`
	Destination domain.Destination `json:"destination"`
	User        *domain.Account    `json:"user"`
}

type sessionResponse struct {
	User        *domain.Account    `json:"user"`
	Destination domain.Destination `json:"destination"`
}

type signupResponse struct {
	User *domain.Account `json:"user"`
}

// --- Events ---

type positionRequest struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

type createEventRequest struct {
	Name      string            `json:"name"       validate:"required"`
	EventDate string            `json:"event_date" validate:"required,datetime=2006-01-02"`
	Location  string            `json:"location"   validate:"required"`
	Notes     string            `json:"notes"`
	Positions []positionRequest `json:"positions"`
}

type createEventResponse struct {
	Event     *domain.Event     `json:"event"`
	Positions []domain.Position `json:"positions"`
	Warning   string            `json:"warning,omitempty"`
}

type eventListResponse struct {
	Events []domain.Event `json:"events"`
}

type positionListResponse struct {
	Positions []domain.Position `json:"positions"`
}

// --- Vendor ---

type profileRequest struct {
	Name         string `json:"name"          validate:"required"`
	Contact      string `json:"contact"`
	BusinessType string `json:"business_type"`
	Bio          string `json:"bio"`
}

type profileResponse struct {
	Profile *domain.VendorProfile `json:"profile"`
}

type applyRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

type applicationsResponse struct {
	EventIDs []string `json:"event_ids"`
}

type messageResponse struct {
	Message string `json:"message"`
}
