package mapping

import (
	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/models"
)

// ToDomainStockEntry converts a stock row to the domain shape.
func ToDomainStockEntry(m models.StockEntry) domain.StockEntry {
	return domain.StockEntry{
		ID:            m.ID,
		PricePerKg:    m.PricePerKg,
		WeightKg:      m.WeightKg,
		PurchaseDate:  m.PurchaseDate,
		Description:   strOrEmpty(m.Description),
		PurchasedBy:   m.PurchasedBy,
		PaymentMethod: m.PaymentMethod,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelStockEntry converts a domain stock entry to its row shape.
func ToModelStockEntry(d domain.StockEntry) models.StockEntry {
	return models.StockEntry{
		ID:            d.ID,
		PricePerKg:    d.PricePerKg,
		WeightKg:      d.WeightKg,
		PurchaseDate:  d.PurchaseDate,
		Description:   strPtr(d.Description),
		PurchasedBy:   d.PurchasedBy,
		PaymentMethod: d.PaymentMethod,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainStockEntrySlice converts a slice of stock rows.
func ToDomainStockEntrySlice(ms []models.StockEntry) []domain.StockEntry {
	ds := make([]domain.StockEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockEntry(m)
	}
	return ds
}
