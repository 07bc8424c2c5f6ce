package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// CreateStockRequest carries a raw-material purchase. Price zero is legal
// (free stock), so bounds are checked in the service rather than by tags.
type CreateStockRequest struct {
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	PurchaseDate  string          `json:"purchase_date" binding:"required,dateonly"`
	Description   string          `json:"description"`
	PurchasedBy   string          `json:"purchased_by" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
}

// StockEntryResponse is the wire shape of one purchase. TotalCost is derived.
type StockEntryResponse struct {
	ID            string          `json:"id"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	PurchaseDate  string          `json:"purchase_date"`
	Description   string          `json:"description,omitempty"`
	PurchasedBy   string          `json:"purchased_by"`
	PaymentMethod string          `json:"payment_method"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToStockEntryResponse converts a domain stock entry to its wire shape.
func ToStockEntryResponse(e *domain.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ID:            strconv.FormatInt(e.ID, 10),
		PricePerKg:    e.PricePerKg,
		WeightKg:      e.WeightKg,
		PurchaseDate:  e.PurchaseDate.Format("2006-01-02"),
		Description:   e.Description,
		PurchasedBy:   e.PurchasedBy,
		PaymentMethod: e.PaymentMethod,
		TotalCost:     e.TotalCost(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// StockListResponse is the stock page: rows plus their totals.
type StockListResponse struct {
	Entries     []StockEntryResponse `json:"entries"`
	TotalWeight decimal.Decimal      `json:"total_weight"`
	TotalCost   decimal.Decimal      `json:"total_cost"`
}

// ToStockListResponse builds the page response from rows and totals.
func ToStockListResponse(entries []domain.StockEntry, totals domain.StockTotals) StockListResponse {
	responses := make([]StockEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToStockEntryResponse(&entries[i])
	}
	return StockListResponse{
		Entries:     responses,
		TotalWeight: totals.TotalWeight,
		TotalCost:   totals.TotalCost,
	}
}
