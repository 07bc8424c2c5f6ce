package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// LedgerRepository persists and queries event_ledger rows.
type LedgerRepository interface {
	// AppendEntry inserts a ledger entry and returns it with its assigned id.
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// ListByEvent returns all entries for one event, newest entry_date first
	// with id as tie-break.
	ListByEvent(ctx context.Context, eventID int64) ([]domain.LedgerEntry, error)

	// ListEntries is the shared selection used by list pages and exports; rows
	// come back newest id first with the owning event's name joined in.
	ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)

	// DeleteEntry hard-deletes by id and returns the deleted row, or
	// apperrors.ErrNotFound.
	DeleteEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error)

	// SumAmount returns the amount total over the selected rows; zero when
	// nothing matches.
	SumAmount(ctx context.Context, filter domain.LedgerSumFilter) (decimal.Decimal, error)

	// CountByEvent counts the ledger rows referencing one event.
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
}
