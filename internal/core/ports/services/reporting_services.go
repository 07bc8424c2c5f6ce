package services

import (
	"context"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// ReportingSvcFacade computes rollups over the ledger.
type ReportingSvcFacade interface {
	// EventRollup computes the four-bucket partition for one event, optionally
	// windowed by entry_date.
	EventRollup(ctx context.Context, eventID int64, dateRange domain.DateRange) (domain.EventRollup, error)

	// DoneEvents lists completed events with per-event rollups and grand
	// totals. A failing per-event sum degrades to zero instead of failing the
	// whole report.
	DoneEvents(ctx context.Context, dateRange domain.DateRange) ([]domain.DoneEventReport, domain.EventRollup, error)

	// CompanyTotals computes the partition over the whole ledger, Company
	// placeholder included.
	CompanyTotals(ctx context.Context, dateRange domain.DateRange) (domain.EventRollup, error)
}
