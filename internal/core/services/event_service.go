package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
	"github.com/eventfin/event_finance_app/internal/dto"
)

// eventService implements event lifecycle operations.
type eventService struct {
	BaseService
	eventRepo  portsrepo.EventRepository
	ledgerRepo portsrepo.LedgerRepository
}

// NewEventService creates the event service. The ledger repository is needed
// to guard deletion against referencing entries.
func NewEventService(eventRepo portsrepo.EventRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate(req.ReservationDeadlineDate)
	if err != nil {
		return nil, err
	}
	startTime, err := parseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}

	var status *domain.EventStatus
	if req.Status != "" {
		st := domain.EventStatus(req.Status)
		status = &st
	}

	event := domain.Event{
		Name:                    req.Name,
		Owner:                   req.Owner,
		Description:             req.Description,
		VenueName:               req.VenueName,
		AddressLine1:            req.AddressLine1,
		City:                    req.City,
		Country:                 req.Country,
		EventDate:               eventDate,
		StartTime:               startTime,
		EndTime:                 endTime,
		EndDate:                 endDate,
		Timezone:                req.Timezone,
		ReservationDeadlineDate: deadline,
		Status:                  status,
		URLAddress:              req.URLAddress,
	}

	created, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		s.LogError(ctx, err, "Failed to create event", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Event created", slog.Int64("event_id", created.ID))
	return created, nil
}

func (s *eventService) SetEventStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error) {
	if status != domain.StatusUpcoming && status != domain.StatusDone {
		return nil, apperrors.NewValidationError("invalid status " + string(status))
	}
	updated, err := s.eventRepo.UpdateEventStatus(ctx, id, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to update event status", slog.Int64("event_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Event status updated", slog.Int64("event_id", id), slog.String("status", string(status)))
	return updated, nil
}

// DeleteEvent refuses to delete while ledger entries still reference the
// event; orphaned financial rows are worse than an extra delete step.
func (s *eventService) DeleteEvent(ctx context.Context, id int64) (*domain.Event, error) {
	count, err := s.ledgerRepo.CountByEvent(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to count ledger entries before delete", slog.Int64("event_id", id))
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("event %d still has %d ledger entries, delete them first", id, count))
	}

	deleted, err := s.eventRepo.DeleteEvent(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.Int64("event_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Event deleted", slog.Int64("event_id", id))
	return deleted, nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	events, err := s.eventRepo.ListUpcomingEvents(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list upcoming events")
		return nil, err
	}
	return events, nil
}
