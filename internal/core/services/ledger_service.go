package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
	"github.com/eventfin/event_finance_app/internal/utils/accounting"
)

const defaultCurrency = "EUR"

// ledgerService implements ledger append/read/delete operations.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	eventRepo  portsrepo.EventRepository
	now        func() time.Time
}

// NewLedgerService creates the ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, eventRepo portsrepo.EventRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo, eventRepo: eventRepo, now: time.Now}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateAmount enforces the amount >= 0 boundary rule before any store call.
func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewValidationError("amount must be non-negative")
	}
	return nil
}

func (s *ledgerService) AppendToEvent(ctx context.Context, eventID int64, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	entryDate, err := resolveEntryDate(req.EntryDate, s.now())
	if err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		EventID:       eventID,
		EntryType:     domain.EntryType(req.EntryType),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      currencyOrDefault(req.Currency),
		EntryDate:     entryDate,
		PaymentMethod: req.PaymentMethod,
		Counterparty:  req.Counterparty,
	}
	created, err := s.ledgerRepo.AppendEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append ledger entry", slog.Int64("event_id", eventID))
		return nil, err
	}
	s.LogInfo(ctx, "Ledger entry appended",
		slog.Int64("entry_id", created.ID),
		slog.Int64("event_id", eventID),
		slog.String("entry_type", req.EntryType))
	return created, nil
}

func (s *ledgerService) AppendCompanyExpense(ctx context.Context, req dto.CompanyExpenseRequest) (*domain.LedgerEntry, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	entryDate, err := resolveEntryDate(req.EntryDate, s.now())
	if err != nil {
		return nil, err
	}
	company, err := s.eventRepo.GetOrCreateCompanyEvent(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve Company placeholder")
		return nil, err
	}

	entry := domain.LedgerEntry{
		EventID:       company.ID,
		EntryType:     domain.EntryExpense,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      currencyOrDefault(req.Currency),
		EntryDate:     entryDate,
		PaymentMethod: req.PaymentMethod,
	}
	created, err := s.ledgerRepo.AppendEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append company expense")
		return nil, err
	}
	s.LogInfo(ctx, "Company expense appended", slog.Int64("entry_id", created.ID))
	return created, nil
}

// AppendSalary writes the canonical salary representation: entry_type=salary
// with the employee as counterparty. Legacy rows encoded as expense/Salary are
// still honored on the read side, never written anymore.
func (s *ledgerService) AppendSalary(ctx context.Context, req dto.SalaryRequest) (*domain.LedgerEntry, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	entryDate, err := resolveEntryDate(req.EntryDate, s.now())
	if err != nil {
		return nil, err
	}
	company, err := s.eventRepo.GetOrCreateCompanyEvent(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve Company placeholder")
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = domain.CategorySalary
	}
	entry := domain.LedgerEntry{
		EventID:       company.ID,
		EntryType:     domain.EntrySalary,
		Category:      category,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      currencyOrDefault(req.Currency),
		EntryDate:     entryDate,
		PaymentMethod: req.PaymentMethod,
		Counterparty:  req.Employee,
	}
	created, err := s.ledgerRepo.AppendEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append salary entry")
		return nil, err
	}
	s.LogInfo(ctx, "Salary entry appended",
		slog.Int64("entry_id", created.ID),
		slog.String("employee", req.Employee))
	return created, nil
}

func (s *ledgerService) ListForEvent(ctx context.Context, eventID int64) ([]domain.LedgerEntry, domain.EventRollup, error) {
	entries, err := s.ledgerRepo.ListByEvent(ctx, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list event ledger", slog.Int64("event_id", eventID))
		return nil, domain.EventRollup{}, err
	}
	return entries, accounting.RollupEntries(entries), nil
}

func (s *ledgerService) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, domain.LedgerTotals, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("entry_type", string(filter.EntryType)))
		return nil, domain.LedgerTotals{}, err
	}
	totals := domain.LedgerTotals{
		Total:      accounting.LedgerTotal(entries),
		ByCategory: accounting.CategoryTotals(entries),
	}
	return entries, totals, nil
}

func (s *ledgerService) DeleteEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	deleted, err := s.ledgerRepo.DeleteEntry(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete ledger entry", slog.Int64("entry_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Ledger entry deleted", slog.Int64("entry_id", id))
	return deleted, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return defaultCurrency
	}
	return currency
}
