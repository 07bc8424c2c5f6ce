package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/middleware"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService     portssvc.EventSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade, rs portssvc.ReportingSvcFacade) *eventHandler {
	return &eventHandler{
		eventService:     es,
		reportingService: rs,
	}
}

// registerEventRoutes registers the event directory routes and the nested
// per-event ledger routes.
func registerEventRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newEventHandler(services.Event, services.Reporting)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listUpcomingEvents)
		events.GET("/done", h.listDoneEvents)
		events.PATCH("/:id", h.updateEventStatus)
		events.DELETE("/:id", h.deleteEvent)
	}

	registerEventLedgerRoutes(events, services.Ledger)
}

// createEvent godoc
// @Summary Create a new event
// @Description Creates an event from date-only and "HH:mm" inputs.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(created))
}

// listUpcomingEvents godoc
// @Summary List upcoming events
// @Description Lists events whose status is upcoming or unset, soonest first.
// @Tags events
// @Produce  json
// @Param   name query string false "Name substring, case-insensitive"
// @Param   city query string false "City substring, case-insensitive"
// @Param   date query string false "Event date (YYYY-MM-DD)"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /events [get]
func (h *eventHandler) listUpcomingEvents(c *gin.Context) {
	date, err := parseDateQuery(c, "date")
	if err != nil {
		respondError(c, err)
		return
	}

	filter := domain.EventFilter{
		Name: c.Query("name"),
		City: c.Query("city"),
		Date: date,
	}
	events, err := h.eventService.ListUpcomingEvents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// listDoneEvents godoc
// @Summary List completed events with rollups
// @Description Lists done events newest first, each with its income/expense/salary/stock rollup, plus grand totals. An event matches the optional window when its date interval overlaps it.
// @Tags events
// @Produce  json
// @Param   start query string false "Window start (YYYY-MM-DD)"
// @Param   end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.DoneEventsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /events/done [get]
func (h *eventHandler) listDoneEvents(c *gin.Context) {
	dateRange, err := parseRangeQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	reports, totals, err := h.reportingService.DoneEvents(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDoneEventsResponse(reports, totals))
}

// updateEventStatus godoc
// @Summary Update an event's status
// @Description Transitions an event between upcoming and done.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   status body dto.UpdateEventStatusRequest true "New status"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid id or status"
// @Router /events/{id} [patch]
func (h *eventHandler) updateEventStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEventStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.eventService.SetEventStatus(c.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(updated))
}

// deleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event that has no ledger entries referencing it.
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Unknown id or entries still attached"
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	deleted, err := h.eventService.DeleteEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(deleted))
}
