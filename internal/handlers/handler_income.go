package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
)

// incomeHandler handles the income list and export.
type incomeHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(ls portssvc.LedgerSvcFacade) *incomeHandler {
	return &incomeHandler{
		ledgerService: ls,
	}
}

// registerIncomeRoutes registers the income routes. Income entries are
// appended through the event ledger, so there is no create route here.
func registerIncomeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newIncomeHandler(ledgerService)

	incomes := rg.Group("/incomes")
	{
		incomes.GET("", h.listIncomes)
		incomes.GET("/export", h.exportIncomes)
	}
}

// listIncomes godoc
// @Summary List incomes
// @Description Lists income entries newest first with the total and per-category breakdown over the same rows.
// @Tags incomes
// @Produce  json
// @Param   start query string false "Window start (YYYY-MM-DD)"
// @Param   end query string false "Window end (YYYY-MM-DD)"
// @Param   category query string false "Category substring, case-insensitive"
// @Param   id query string false "Single entry id, overrides other filters"
// @Success 200 {object} dto.LedgerListResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	filter, err := parseLedgerFilterQuery(c, domain.EntryIncome)
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

// exportIncomes godoc
// @Summary Export incomes
// @Description Downloads the filtered income rows as csv, excel or word. The filter contract matches the list endpoint.
// @Tags incomes
// @Produce  text/csv
// @Param   start query string false "Window start (YYYY-MM-DD)"
// @Param   end query string false "Window end (YYYY-MM-DD)"
// @Param   category query string false "Category substring, case-insensitive"
// @Param   id query string false "Single entry id, overrides other filters"
// @Param   format query string false "csv (default), excel/xls or word/doc"
// @Success 200 {string} string "Document body"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /incomes/export [get]
func (h *incomeHandler) exportIncomes(c *gin.Context) {
	exportLedger(c, h.ledgerService, domain.EntryIncome, "incomes")
}
