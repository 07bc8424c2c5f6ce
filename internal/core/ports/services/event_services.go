package services

import (
	"context"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/dto"
)

// EventSvcFacade exposes event lifecycle operations to the handlers.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)
	SetEventStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListUpcomingEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
}
