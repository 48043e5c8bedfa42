package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/api/metrics"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

// AuthHandler serves signup, login and the session lifecycle.
type AuthHandler struct {
	router   ports.SessionRouter
	signup   ports.SignupService
	identity ports.IdentityService
}

func NewAuthHandler(router ports.SessionRouter, signup ports.SignupService, identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{router: router, signup: signup, identity: identity}
}

// Signup creates an account with its profile and role rows.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string         false  "Form instance key"
// @Param        body             body      signupRequest  true   "Signup form"
// @Success      201              {object}  signupResponse
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Role = normalizeRole(req.Role)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.signup.Register(c.Request().Context(), toSignupInput(req))
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(account.Role)).Inc()
	return c.JSON(http.StatusCreated, signupResponse{User: account})
}

// Login authenticates and resolves the account's dashboard.
//
// @Summary      Login
// @Description  The optional role is checked against the account; on mismatch the new session is signed out.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string        false  "Form instance key"
// @Param        body             body      loginRequest  true   "Login credentials"
// @Success      200              {object}  loginResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Role = normalizeRole(req.Role)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.router.Route(c.Request().Context(), toLoginInput(req))
	metrics.LoginsTotal.WithLabelValues(string(loginOutcome(err))).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:       result.Session.Token,
		ExpiresAt:   result.Session.ExpiresAt,
		Destination: result.Destination,
		User:        result.Account,
	})
}

// Logout signs the current session out.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.identity.SignOut(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the signed-in account and its dashboard.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	account, err := h.identity.CurrentAccount(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		User:        account,
		Destination: domain.DestinationFor(account.Role),
	})
}
