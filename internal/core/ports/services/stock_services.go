package services

import (
	"context"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/dto"
)

// StockSvcFacade exposes the stock purchase ledger.
type StockSvcFacade interface {
	AddStock(ctx context.Context, req dto.CreateStockRequest) (*domain.StockEntry, error)
	ListStock(ctx context.Context, id *int64) ([]domain.StockEntry, domain.StockTotals, error)
}
