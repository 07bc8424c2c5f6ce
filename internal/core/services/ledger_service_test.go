package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/core/services"
	"github.com/eventfin/event_finance_app/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockEventRepo  *MockEventRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockEventRepo)
}

func companyEvent() *domain.Event {
	status := domain.StatusDone
	return &domain.Event{
		ID:     1,
		Name:   domain.CompanyEventName,
		Owner:  domain.CompanyEventOwner,
		Status: &status,
	}
}

func (suite *LedgerServiceTestSuite) TestAppendToEvent_Success() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		EntryType:    "income",
		Category:     "Tickets",
		Amount:       decimal.NewFromInt(250),
		EntryDate:    "2026-05-01",
		Counterparty: "Box office",
	}

	suite.mockEventRepo.On("FindEventByID", ctx, int64(7)).Return(&domain.Event{ID: 7, Name: "Spring Gala"}, nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EventID == 7 &&
			e.EntryType == domain.EntryIncome &&
			e.Currency == "EUR" &&
			e.EntryDate.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) &&
			e.Amount.Equal(decimal.NewFromInt(250))
	})).Return(&domain.LedgerEntry{ID: 42, EventID: 7, EntryType: domain.EntryIncome}, nil).Once()

	created, err := suite.service.AppendToEvent(ctx, 7, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), created.ID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendToEvent_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		EntryType: "expense",
		Amount:    decimal.NewFromInt(-10),
	}

	created, err := suite.service.AppendToEvent(ctx, 7, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Validation must fail before any store call
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAppendToEvent_ZeroAmountAllowed() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{EntryType: "expense", Amount: decimal.Zero}

	suite.mockEventRepo.On("FindEventByID", ctx, int64(3)).Return(&domain.Event{ID: 3}, nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.Anything).
		Return(&domain.LedgerEntry{ID: 5, EventID: 3}, nil).Once()

	_, err := suite.service.AppendToEvent(ctx, 3, req)

	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestAppendToEvent_UnknownEvent() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{EntryType: "income", Amount: decimal.NewFromInt(5)}

	suite.mockEventRepo.On("FindEventByID", ctx, int64(99)).
		Return(nil, apperrors.NewNotFoundError("event 99 not found")).Once()

	created, err := suite.service.AppendToEvent(ctx, 99, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAppendToEvent_BadDate() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{EntryType: "income", Amount: decimal.NewFromInt(5), EntryDate: "01/05/2026"}

	_, err := suite.service.AppendToEvent(ctx, 7, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAppendCompanyExpense_UsesPlaceholder() {
	ctx := context.Background()
	req := dto.CompanyExpenseRequest{
		Category: "Rent",
		Amount:   decimal.NewFromInt(900),
	}

	suite.mockEventRepo.On("GetOrCreateCompanyEvent", ctx).Return(companyEvent(), nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EventID == 1 && e.EntryType == domain.EntryExpense && e.Category == "Rent"
	})).Return(&domain.LedgerEntry{ID: 8, EventID: 1, EntryType: domain.EntryExpense}, nil).Once()

	created, err := suite.service.AppendCompanyExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(8), created.ID)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendSalary_CanonicalType() {
	ctx := context.Background()
	req := dto.SalaryRequest{
		Amount:   decimal.NewFromInt(1200),
		Employee: "Mara",
	}

	suite.mockEventRepo.On("GetOrCreateCompanyEvent", ctx).Return(companyEvent(), nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		// Canonical salary rows carry the salary type, never expense/Salary
		return e.EntryType == domain.EntrySalary &&
			e.Category == domain.CategorySalary &&
			e.Counterparty == "Mara" &&
			e.EventID == 1
	})).Return(&domain.LedgerEntry{ID: 9, EventID: 1, EntryType: domain.EntrySalary}, nil).Once()

	created, err := suite.service.AppendSalary(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.EntrySalary, created.EntryType)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendSalary_KeepsExplicitCategory() {
	ctx := context.Background()
	req := dto.SalaryRequest{
		Amount:   decimal.NewFromInt(300),
		Category: "Bonus",
		Employee: "Iris",
	}

	suite.mockEventRepo.On("GetOrCreateCompanyEvent", ctx).Return(companyEvent(), nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Category == "Bonus"
	})).Return(&domain.LedgerEntry{ID: 10, EventID: 1, EntryType: domain.EntrySalary}, nil).Once()

	_, err := suite.service.AppendSalary(ctx, req)

	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestListForEvent_ComputesRollup() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{ID: 4, EntryType: domain.EntryIncome, Amount: decimal.NewFromInt(500)},
		{ID: 3, EntryType: domain.EntryExpense, Amount: decimal.NewFromInt(120)},
		{ID: 2, EntryType: domain.EntryExpense, Category: domain.CategorySalary, Amount: decimal.NewFromInt(80)},
		{ID: 1, EntryType: domain.EntrySalary, Amount: decimal.NewFromInt(40)},
	}

	suite.mockLedgerRepo.On("ListByEvent", ctx, int64(7)).Return(entries, nil).Once()

	got, rollup, err := suite.service.ListForEvent(ctx, 7)

	suite.Require().NoError(err)
	suite.Len(got, 4)
	suite.True(rollup.Income.Equal(decimal.NewFromInt(500)))
	suite.True(rollup.Expense.Equal(decimal.NewFromInt(120)))
	// Legacy expense/Salary rows count as salary, not expense
	suite.True(rollup.Salary.Equal(decimal.NewFromInt(120)))
	suite.True(rollup.Net().Equal(decimal.NewFromInt(260)))
}

func (suite *LedgerServiceTestSuite) TestListEntries_Totals() {
	ctx := context.Background()
	filter := domain.LedgerFilter{EntryType: domain.EntryExpense}
	entries := []domain.LedgerEntry{
		{ID: 2, EntryType: domain.EntryExpense, Category: "Rent", Amount: decimal.NewFromInt(900)},
		{ID: 1, EntryType: domain.EntryExpense, Amount: decimal.NewFromInt(30)},
	}

	suite.mockLedgerRepo.On("ListEntries", ctx, filter).Return(entries, nil).Once()

	got, totals, err := suite.service.ListEntries(ctx, filter)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.True(totals.Total.Equal(decimal.NewFromInt(930)))
	suite.Require().Len(totals.ByCategory, 2)
	suite.Equal("Rent", totals.ByCategory[0].Category)
	suite.Equal(domain.UncategorizedKey, totals.ByCategory[1].Category)
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("DeleteEntry", ctx, int64(77)).
		Return(nil, apperrors.NewNotFoundError("ledger entry 77 not found")).Once()

	deleted, err := suite.service.DeleteEntry(ctx, 77)

	suite.Require().Error(err)
	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestAppendToEvent_DefaultsEntryDateToNow(t *testing.T) {
	ctx := context.Background()
	mockLedgerRepo := new(MockLedgerRepository)
	mockEventRepo := new(MockEventRepository)
	service := services.NewLedgerService(mockLedgerRepo, mockEventRepo)

	mockEventRepo.On("FindEventByID", ctx, int64(1)).Return(&domain.Event{ID: 1}, nil).Once()
	mockLedgerRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return time.Since(e.EntryDate) < time.Second
	})).Return(&domain.LedgerEntry{ID: 1, EventID: 1}, nil).Once()

	_, err := service.AppendToEvent(ctx, 1, dto.CreateLedgerEntryRequest{
		EntryType: "expense",
		Amount:    decimal.NewFromInt(1),
	})

	assert.NoError(t, err)
	mockLedgerRepo.AssertExpectations(t)
}
