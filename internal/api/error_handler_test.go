package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"authentication", domain.NewAuthenticationError(domain.ErrInvalidCredentials), http.StatusUnauthorized, "invalid login credentials"},
		{"transport", &domain.AuthenticationError{Message: "authentication service unavailable", Err: errors.New("dial tcp")}, http.StatusUnauthorized, "authentication service unavailable"},
		{"role mismatch", &domain.RoleMismatchError{Asserted: domain.RoleVendor, Persisted: domain.RoleOrganiser}, http.StatusForbidden, "Account is registered as organiser."},
		{"missing role", domain.ErrMissingRole, http.StatusUnprocessableEntity, "account has no role assigned, please contact support"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "This email is already in use. Try logging in."},
		{"already applied", domain.ErrAlreadyApplied, http.StatusConflict, "You've already applied for this event."},
		{"event not found", fmt.Errorf("apply: %w", domain.ErrEventNotFound), http.StatusNotFound, "event not found"},
		{"in flight", domain.ErrSubmissionInFlight, http.StatusConflict, "This form is already being submitted."},
		{"upload", fmt.Errorf("%w: timeout", domain.ErrUploadFailed), http.StatusBadGateway, "Upload failed"},
		{"document row", fmt.Errorf("%w: write", domain.ErrDocumentNotSaved), http.StatusInternalServerError, "DB insert failed"},
		{"no session", domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body.Error)
			}
		})
	}
}
