package repositories

import (
	"context"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// StockRepository persists and queries stock purchase rows.
type StockRepository interface {
	// AppendStock inserts a purchase and returns it with its assigned id.
	AppendStock(ctx context.Context, entry domain.StockEntry) (*domain.StockEntry, error)

	// ListStock returns purchases newest id first; a non-nil id narrows the
	// result to that single row.
	ListStock(ctx context.Context, id *int64) ([]domain.StockEntry, error)
}
