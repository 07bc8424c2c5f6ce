package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
)

// reportingService computes rollups straight from SQL sums so reports stay
// cheap even when an event carries thousands of entries.
type reportingService struct {
	BaseService
	eventRepo  portsrepo.EventRepository
	ledgerRepo portsrepo.LedgerRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(eventRepo portsrepo.EventRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.ReportingSvcFacade {
	return &reportingService{eventRepo: eventRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// sumRollup runs the five bucket sums concurrently. The buckets partition the
// ledger: salary covers the canonical type plus the legacy expense/Salary
// encoding, stock is expense/Stock, and plain expense excludes both special
// categories so no row is counted twice.
func (s *reportingService) sumRollup(ctx context.Context, eventID *int64, dateRange domain.DateRange) (domain.EventRollup, error) {
	var rollup domain.EventRollup
	var legacySalary decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := s.ledgerRepo.SumAmount(gctx, domain.LedgerSumFilter{
			EntryType: domain.EntryIncome,
			EventID:   eventID,
			Range:     dateRange,
		})
		rollup.Income = sum
		return err
	})
	g.Go(func() error {
		sum, err := s.ledgerRepo.SumAmount(gctx, domain.LedgerSumFilter{
			EntryType:     domain.EntryExpense,
			EventID:       eventID,
			Range:         dateRange,
			CategoryNotIn: []string{domain.CategorySalary, domain.CategoryStock},
		})
		rollup.Expense = sum
		return err
	})
	g.Go(func() error {
		sum, err := s.ledgerRepo.SumAmount(gctx, domain.LedgerSumFilter{
			EntryType: domain.EntrySalary,
			EventID:   eventID,
			Range:     dateRange,
		})
		rollup.Salary = sum
		return err
	})
	g.Go(func() error {
		sum, err := s.ledgerRepo.SumAmount(gctx, domain.LedgerSumFilter{
			EntryType:  domain.EntryExpense,
			EventID:    eventID,
			Range:      dateRange,
			CategoryIn: []string{domain.CategorySalary},
		})
		legacySalary = sum
		return err
	})
	g.Go(func() error {
		sum, err := s.ledgerRepo.SumAmount(gctx, domain.LedgerSumFilter{
			EntryType:  domain.EntryExpense,
			EventID:    eventID,
			Range:      dateRange,
			CategoryIn: []string{domain.CategoryStock},
		})
		rollup.Stock = sum
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.EventRollup{}, err
	}
	rollup.Salary = rollup.Salary.Add(legacySalary)
	return rollup, nil
}

func (s *reportingService) EventRollup(ctx context.Context, eventID int64, dateRange domain.DateRange) (domain.EventRollup, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return domain.EventRollup{}, err
	}
	rollup, err := s.sumRollup(ctx, &eventID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute event rollup", slog.Int64("event_id", eventID))
		return domain.EventRollup{}, err
	}
	return rollup, nil
}

// DoneEvents returns completed events with per-event rollups and the grand
// total. A failing per-event sum is reported as zero rather than failing the
// whole report, so one bad event cannot blank the page.
func (s *reportingService) DoneEvents(ctx context.Context, dateRange domain.DateRange) ([]domain.DoneEventReport, domain.EventRollup, error) {
	events, err := s.eventRepo.ListDoneEvents(ctx, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list done events")
		return nil, domain.EventRollup{}, err
	}

	reports := make([]domain.DoneEventReport, len(events))
	grand := domain.EventRollup{}
	for i, event := range events {
		id := event.ID
		rollup, err := s.sumRollup(ctx, &id, domain.DateRange{})
		if err != nil {
			s.LogWarn(ctx, "Rollup failed for done event, reporting zero",
				slog.Int64("event_id", id), slog.String("error", err.Error()))
			rollup = domain.EventRollup{}
		}
		reports[i] = domain.DoneEventReport{Event: event, Rollup: rollup}
		grand = grand.Add(rollup)
	}
	return reports, grand, nil
}

func (s *reportingService) CompanyTotals(ctx context.Context, dateRange domain.DateRange) (domain.EventRollup, error) {
	rollup, err := s.sumRollup(ctx, nil, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute company totals")
		return domain.EventRollup{}, err
	}
	return rollup, nil
}
