package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Login outcomes carry their own user-facing text.
	var authErr *domain.AuthenticationError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized, authErr.Message
	}
	var mismatch *domain.RoleMismatchError
	if errors.As(err, &mismatch) {
		return http.StatusForbidden, mismatch.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingRole):
		return http.StatusUnprocessableEntity, domain.ErrMissingRole.Error()
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "no active session"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "This email is already in use. Try logging in."
	case errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidEvent),
		errors.Is(err, domain.ErrInvalidDocType):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, domain.ErrAlreadyApplied):
		return http.StatusConflict, "You've already applied for this event."
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, "This form is already being submitted."
	case errors.Is(err, domain.ErrUploadFailed):
		log.Error().Err(err).Str("path", c.Path()).Msg("document upload failed")
		return http.StatusBadGateway, "Upload failed"
	case errors.Is(err, domain.ErrDocumentNotSaved):
		log.Error().Err(err).Str("path", c.Path()).Msg("document row insert failed")
		return http.StatusInternalServerError, "DB insert failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
