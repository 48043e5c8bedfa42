package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/api/middleware"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// ctxAccount extracts the identity injected by the Auth middleware. An empty
// account id means the middleware did not run for this route.
func ctxAccount(c echo.Context) (accountID string, role domain.Role, err error) {
	accountID, _ = c.Get(middleware.KeyAccountID).(string)
	if accountID == "" {
		return "", domain.RoleNone, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	r, _ := c.Get(middleware.KeyRole).(string)
	return accountID, domain.Role(r), nil
}

// ctxSession rebuilds the session handle for identity service calls.
func ctxSession(c echo.Context) (*domain.Session, error) {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return nil, err
	}
	sid, _ := c.Get(middleware.KeySessionID).(string)
	if sid == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	token, _ := c.Get(middleware.KeyToken).(string)
	return &domain.Session{ID: sid, AccountID: accountID, Token: token}, nil
}
