package services

import (
	"context"
	"log/slog"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/utils/accounting"
)

// stockService implements the stock purchase ledger.
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepository
}

// NewStockService creates the stock service.
func NewStockService(stockRepo portsrepo.StockRepository) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) AddStock(ctx context.Context, req dto.CreateStockRequest) (*domain.StockEntry, error) {
	if req.PricePerKg.IsNegative() {
		return nil, apperrors.NewValidationError("price per kg must be non-negative")
	}
	if !req.WeightKg.IsPositive() {
		return nil, apperrors.NewValidationError("weight must be positive")
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if purchaseDate == nil {
		return nil, apperrors.NewValidationError("purchase date is required")
	}

	entry := domain.StockEntry{
		PricePerKg:    req.PricePerKg,
		WeightKg:      req.WeightKg,
		PurchaseDate:  *purchaseDate,
		Description:   req.Description,
		PurchasedBy:   req.PurchasedBy,
		PaymentMethod: req.PaymentMethod,
	}
	created, err := s.stockRepo.AppendStock(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append stock purchase")
		return nil, err
	}
	s.LogInfo(ctx, "Stock purchase appended",
		slog.Int64("stock_id", created.ID),
		slog.String("purchased_by", created.PurchasedBy))
	return created, nil
}

func (s *stockService) ListStock(ctx context.Context, id *int64) ([]domain.StockEntry, domain.StockTotals, error) {
	entries, err := s.stockRepo.ListStock(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock purchases")
		return nil, domain.StockTotals{}, err
	}
	return entries, accounting.StockTotals(entries), nil
}
