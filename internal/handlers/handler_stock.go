package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/export"
	"github.com/eventfin/event_finance_app/internal/middleware"
)

// stockHandler handles the stock purchase ledger.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// registerStockRoutes registers the stock routes.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("", h.createStock)
		stock.GET("", h.listStock)
		stock.GET("/export", h.exportStock)
	}
}

// createStock godoc
// @Summary Record a stock purchase
// @Description Appends a raw-material purchase. Price must be non-negative and weight positive.
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreateStockRequest true "Purchase details"
// @Success 201 {object} dto.StockEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /stock [post]
func (h *stockHandler) createStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.stockService.AddStock(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockEntryResponse(created))
}

// listStock godoc
// @Summary List stock purchases
// @Description Lists purchases newest first with the total weight and cost over the same rows.
// @Tags stock
// @Produce  json
// @Param   id query string false "Single purchase id"
// @Success 200 {object} dto.StockListResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	id, err := parseOptionalIDQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, totals, err := h.stockService.ListStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStockListResponse(entries, totals))
}

// exportStock godoc
// @Summary Export stock purchases
// @Description Downloads the purchase rows as csv, excel or word. Quantities follow the unit marker in the description: kg with 3 decimals, pcs with none.
// @Tags stock
// @Produce  text/csv
// @Param   id query string false "Single purchase id"
// @Param   format query string false "csv (default), excel/xls or word/doc"
// @Success 200 {string} string "Document body"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /stock/export [get]
func (h *stockHandler) exportStock(c *gin.Context) {
	id, err := parseOptionalIDQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, _, err := h.stockService.ListStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	doc := export.StockDocument(entries, c.Query("id"), export.ParseFormat(c.Query("format")))
	serveDocument(c, doc)
}
