package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is one raw-material purchase. Stock is a company-wide ledger of
// its own and has no relation to events.
type StockEntry struct {
	ID            int64           `json:"id"`
	PricePerKg    decimal.Decimal `json:"pricePerKg"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	Description   string          `json:"description"`
	PurchasedBy   string          `json:"purchasedBy"`
	PaymentMethod string          `json:"paymentMethod"`
	Timestamps
}

// TotalCost is price times quantity. It is always derived, never stored.
func (s StockEntry) TotalCost() decimal.Decimal {
	return s.PricePerKg.Mul(s.WeightKg)
}
