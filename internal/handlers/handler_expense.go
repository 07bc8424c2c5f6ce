package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/export"
	"github.com/eventfin/event_finance_app/internal/middleware"
)

// expenseHandler handles the company expense list, append and export.
type expenseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(ls portssvc.LedgerSvcFacade) *expenseHandler {
	return &expenseHandler{
		ledgerService: ls,
	}
}

// registerExpenseRoutes registers the expense routes.
func registerExpenseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newExpenseHandler(ledgerService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/export", h.exportExpenses)
	}
}

// createExpense godoc
// @Summary Record a company expense
// @Description Appends an expense under the Company placeholder event, creating the placeholder on first use.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CompanyExpenseRequest true "Expense details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CompanyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.ledgerService.AppendCompanyExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(created))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expense entries newest first with the total and per-category breakdown over the same rows.
// @Tags expenses
// @Produce  json
// @Param   start query string false "Window start (YYYY-MM-DD)"
// @Param   end query string false "Window end (YYYY-MM-DD)"
// @Param   category query string false "Category substring, case-insensitive"
// @Param   id query string false "Single entry id, overrides other filters"
// @Success 200 {object} dto.LedgerListResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	filter, err := parseLedgerFilterQuery(c, domain.EntryExpense)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, totals, err := h.ledgerService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerListResponse(entries, totals))
}

// exportExpenses godoc
// @Summary Export expenses
// @Description Downloads the filtered expense rows as csv, excel or word. The filter contract matches the list endpoint.
// @Tags expenses
// @Produce  text/csv
// @Param   start query string false "Window start (YYYY-MM-DD)"
// @Param   end query string false "Window end (YYYY-MM-DD)"
// @Param   category query string false "Category substring, case-insensitive"
// @Param   id query string false "Single entry id, overrides other filters"
// @Param   format query string false "csv (default), excel/xls or word/doc"
// @Success 200 {string} string "Document body"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /expenses/export [get]
func (h *expenseHandler) exportExpenses(c *gin.Context) {
	exportLedger(c, h.ledgerService, domain.EntryExpense, "expenses")
}

// exportLedger runs the shared list selection and serves the encoded document.
// Shared by the expense and income export endpoints, which differ only in
// entry type and filename subject.
func exportLedger(c *gin.Context, ledgerService portssvc.LedgerSvcFacade, entryType domain.EntryType, subject string) {
	filter, err := parseLedgerFilterQuery(c, entryType)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, _, err := ledgerService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	doc := export.LedgerDocument(entries, export.LedgerExportParams{
		Subject:  subject,
		Start:    c.Query("start"),
		End:      c.Query("end"),
		Category: c.Query("category"),
	}, export.ParseFormat(c.Query("format")))
	serveDocument(c, doc)
}
