package repositories

import (
	"context"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// EventRepository persists and queries events.
type EventRepository interface {
	// CreateEvent inserts a new event and returns it with its assigned id.
	CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error)

	// FindEventByID returns the event or apperrors.ErrNotFound.
	FindEventByID(ctx context.Context, id int64) (*domain.Event, error)

	// UpdateEventStatus updates the status field only and returns the updated row.
	UpdateEventStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error)

	// DeleteEvent hard-deletes the event and returns the deleted row.
	DeleteEvent(ctx context.Context, id int64) (*domain.Event, error)

	// ListUpcomingEvents returns events whose status is upcoming or unset,
	// narrowed by the filter.
	ListUpcomingEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)

	// ListDoneEvents returns done events, newest first. When a range is given an
	// event qualifies if its [event_date .. end_date-or-event_date] interval
	// overlaps the range.
	ListDoneEvents(ctx context.Context, dateRange domain.DateRange) ([]domain.Event, error)

	// GetOrCreateCompanyEvent returns the Company placeholder, creating it on
	// first use. Safe under concurrent callers.
	GetOrCreateCompanyEvent(ctx context.Context) (*domain.Event, error)
}
