package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/core/services"
	"github.com/eventfin/event_finance_app/internal/dto"
)

type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo *MockStockRepository
	service       portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.service = services.NewStockService(suite.mockStockRepo)
}

func (suite *StockServiceTestSuite) TestAddStock_Success() {
	ctx := context.Background()
	req := dto.CreateStockRequest{
		PricePerKg:    decimal.RequireFromString("4.50"),
		WeightKg:      decimal.RequireFromString("2.500"),
		PurchaseDate:  "2026-04-20",
		PurchasedBy:   "Omar",
		PaymentMethod: "card",
	}

	suite.mockStockRepo.On("AppendStock", ctx, mock.MatchedBy(func(e domain.StockEntry) bool {
		return e.PurchasedBy == "Omar" &&
			e.PurchaseDate.Equal(time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)) &&
			e.PricePerKg.Equal(decimal.RequireFromString("4.50"))
	})).Return(&domain.StockEntry{ID: 3, PurchasedBy: "Omar"}, nil).Once()

	created, err := suite.service.AddStock(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(3), created.ID)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAddStock_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateStockRequest{
		PricePerKg:    decimal.NewFromInt(-1),
		WeightKg:      decimal.NewFromInt(1),
		PurchaseDate:  "2026-04-20",
		PurchasedBy:   "Omar",
		PaymentMethod: "card",
	}

	created, err := suite.service.AddStock(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "AppendStock", mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestAddStock_ZeroWeight() {
	ctx := context.Background()
	req := dto.CreateStockRequest{
		PricePerKg:    decimal.NewFromInt(2),
		WeightKg:      decimal.Zero,
		PurchaseDate:  "2026-04-20",
		PurchasedBy:   "Omar",
		PaymentMethod: "card",
	}

	_, err := suite.service.AddStock(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StockServiceTestSuite) TestAddStock_ZeroPriceAllowed() {
	ctx := context.Background()
	req := dto.CreateStockRequest{
		PricePerKg:    decimal.Zero,
		WeightKg:      decimal.NewFromInt(5),
		PurchaseDate:  "2026-04-20",
		PurchasedBy:   "Omar",
		PaymentMethod: "cash",
	}

	suite.mockStockRepo.On("AppendStock", ctx, mock.Anything).
		Return(&domain.StockEntry{ID: 4}, nil).Once()

	_, err := suite.service.AddStock(ctx, req)

	suite.Require().NoError(err)
}

func (suite *StockServiceTestSuite) TestListStock_Totals() {
	ctx := context.Background()
	entries := []domain.StockEntry{
		{ID: 2, PricePerKg: decimal.NewFromInt(4), WeightKg: decimal.RequireFromString("2.5")},
		{ID: 1, PricePerKg: decimal.NewFromInt(2), WeightKg: decimal.NewFromInt(3)},
	}

	suite.mockStockRepo.On("ListStock", ctx, (*int64)(nil)).Return(entries, nil).Once()

	got, totals, err := suite.service.ListStock(ctx, nil)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.True(totals.TotalWeight.Equal(decimal.RequireFromString("5.5")))
	// 4*2.5 + 2*3: per-row cost, not derivable from the two sums
	suite.True(totals.TotalCost.Equal(decimal.NewFromInt(16)))
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
