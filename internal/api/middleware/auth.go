package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/auth"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

// Context keys set by Auth.
const (
	KeyAccountID = "account_id"
	KeyEmail     = "email"
	KeyRole      = "role"
	KeySessionID = "session_id"
	KeyToken     = "token"
)

// Auth validates the bearer token, checks that its session has not been
// signed out, and injects the claims into the context.
func Auth(tokens *auth.TokenManager, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			accountID, err := sessions.AccountID(c.Request().Context(), claims.SessionID)
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired or signed out")
				}
				return err
			}
			if accountID != claims.Subject {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(KeyAccountID, claims.Subject)
			c.Set(KeyEmail, claims.Email)
			c.Set(KeyRole, claims.Role)
			c.Set(KeySessionID, claims.SessionID)
			c.Set(KeyToken, parts[1])

			return next(c)
		}
	}
}
