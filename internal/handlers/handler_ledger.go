package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for the append-only ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerEventLedgerRoutes registers the per-event ledger routes nested under
// the events group.
func registerEventLedgerRoutes(events *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	eventLedger := events.Group("/:id/ledger")
	{
		eventLedger.GET("", h.listEventLedger)
		eventLedger.POST("", h.appendEventLedger)
	}
}

// registerLedgerRoutes registers the top-level ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.DELETE("/:id", h.deleteLedgerEntry)
	}
}

// listEventLedger godoc
// @Summary List an event's ledger
// @Description Lists the event's entries newest first together with the income/expense/salary/stock totals.
// @Tags ledger
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.EventLedgerResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Router /events/{id}/ledger [get]
func (h *ledgerHandler) listEventLedger(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	entries, rollup, err := h.ledgerService.ListForEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventLedgerResponse{
		Entries: dto.ToLedgerEntryResponses(entries),
		Totals:  dto.ToRollupResponse(rollup),
	})
}

// appendEventLedger godoc
// @Summary Append a ledger entry to an event
// @Description Appends an income, expense or salary entry. Amount must be non-negative; entry date defaults to today.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown event"
// @Router /events/{id}/ledger [post]
func (h *ledgerHandler) appendEventLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendEventLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.ledgerService.AppendToEvent(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(created))
}

// deleteLedgerEntry godoc
// @Summary Delete a ledger entry
// @Description Hard-deletes a ledger entry by id and returns the deleted row.
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Unknown id"
// @Router /ledger/{id} [delete]
func (h *ledgerHandler) deleteLedgerEntry(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	deleted, err := h.ledgerService.DeleteEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(deleted))
}
