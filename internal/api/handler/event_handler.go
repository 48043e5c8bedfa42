package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/api/metrics"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

const positionsFailedWarning = "Event created, but positions failed"

// EventHandler serves the organiser and company event views.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /v1/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  eventListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventListResponse{Events: events})
}

// Create handles POST /v1/organiser/events. A positions failure still
// returns 201 with a warning because the event itself was stored.
//
// @Summary      Create an event with staffing positions
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Form instance key"
// @Param        body             body      createEventRequest  true   "Event"
// @Success      201              {object}  createEventResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/organiser/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	organiserID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in, err := toCreateEventInput(req, organiserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "event_date must be a date in 2006-01-02 format")
	}

	result, err := h.service.CreateEvent(c.Request().Context(), in)
	if err != nil {
		return err
	}

	resp := createEventResponse{Event: result.Event, Positions: result.Positions}
	if result.PositionsErr != nil {
		resp.Warning = positionsFailedWarning
		metrics.EventsCreatedTotal.WithLabelValues("failed").Inc()
	} else {
		metrics.EventsCreatedTotal.WithLabelValues("ok").Inc()
	}
	return c.JSON(http.StatusCreated, resp)
}

// Positions handles GET /v1/events/:id/positions.
//
// @Summary      List an event's staffing positions
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  positionListResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/events/{id}/positions [get]
func (h *EventHandler) Positions(c echo.Context) error {
	positions, err := h.service.ListPositions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, positionListResponse{Positions: positions})
}
