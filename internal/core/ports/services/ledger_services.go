package services

import (
	"context"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/dto"
)

// LedgerSvcFacade exposes ledger append/read/delete operations.
type LedgerSvcFacade interface {
	// AppendToEvent validates and stores an entry scoped to an event.
	AppendToEvent(ctx context.Context, eventID int64, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)

	// AppendCompanyExpense stores an expense under the Company placeholder,
	// creating the placeholder on first use.
	AppendCompanyExpense(ctx context.Context, req dto.CompanyExpenseRequest) (*domain.LedgerEntry, error)

	// AppendSalary stores a salary payment under the Company placeholder.
	AppendSalary(ctx context.Context, req dto.SalaryRequest) (*domain.LedgerEntry, error)

	// ListForEvent returns an event's entries newest first along with the
	// income/expense/net header figures.
	ListForEvent(ctx context.Context, eventID int64) ([]domain.LedgerEntry, domain.EventRollup, error)

	// ListEntries returns the filtered row set together with its page totals.
	// The same filter drives exports, so list and export always agree.
	ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, domain.LedgerTotals, error)

	// DeleteEntry hard-deletes by id and returns the deleted row.
	DeleteEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error)
}
