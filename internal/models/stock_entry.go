package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry mirrors the stock table.
type StockEntry struct {
	ID            int64           `db:"id"`
	PricePerKg    decimal.Decimal `db:"price_per_kg"`
	WeightKg      decimal.Decimal `db:"weight_kg"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	Description   *string         `db:"description"`
	PurchasedBy   string          `db:"purchased_by"`
	PaymentMethod string          `db:"payment_method"`
	Timestamps
}
