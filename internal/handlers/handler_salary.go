package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/middleware"
)

// salaryHandler handles salary payments.
type salaryHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newSalaryHandler creates a new salaryHandler.
func newSalaryHandler(ls portssvc.LedgerSvcFacade) *salaryHandler {
	return &salaryHandler{
		ledgerService: ls,
	}
}

// registerSalaryRoutes registers the salary routes.
func registerSalaryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newSalaryHandler(ledgerService)

	salaries := rg.Group("/salaries")
	{
		salaries.POST("", h.createSalary)
	}
}

// createSalary godoc
// @Summary Record a salary payment
// @Description Appends a salary entry under the Company placeholder event. The employee name is stored as the entry's counterparty.
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   salary body dto.SalaryRequest true "Salary details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /salaries [post]
func (h *salaryHandler) createSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.ledgerService.AppendSalary(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(created))
}
