package mapping

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/models"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func timeOfDay(t pgtype.Time) *domain.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := domain.TimeOfDayFromMicroseconds(t.Microseconds)
	return &tod
}

func pgTime(t *domain.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

// ToDomainEvent converts an events row to the domain shape.
func ToDomainEvent(m models.Event) domain.Event {
	var status *domain.EventStatus
	if m.Status != nil {
		s := domain.EventStatus(*m.Status)
		status = &s
	}
	return domain.Event{
		ID:                      m.ID,
		Name:                    m.Name,
		Owner:                   m.Owner,
		Description:             strOrEmpty(m.Description),
		VenueName:               strOrEmpty(m.VenueName),
		AddressLine1:            strOrEmpty(m.AddressLine1),
		City:                    strOrEmpty(m.City),
		Country:                 strOrEmpty(m.Country),
		EventDate:               m.EventDate,
		StartTime:               timeOfDay(m.StartTime),
		EndTime:                 timeOfDay(m.EndTime),
		EndDate:                 m.EndDate,
		Timezone:                strOrEmpty(m.Timezone),
		ReservationDeadlineDate: m.ReservationDeadlineDate,
		Status:                  status,
		URLAddress:              strOrEmpty(m.URLAddress),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelEvent converts a domain event to its row shape.
func ToModelEvent(d domain.Event) models.Event {
	var status *string
	if d.Status != nil {
		s := string(*d.Status)
		status = &s
	}
	return models.Event{
		ID:                      d.ID,
		Name:                    d.Name,
		Owner:                   d.Owner,
		Description:             strPtr(d.Description),
		VenueName:               strPtr(d.VenueName),
		AddressLine1:            strPtr(d.AddressLine1),
		City:                    strPtr(d.City),
		Country:                 strPtr(d.Country),
		EventDate:               d.EventDate,
		StartTime:               pgTime(d.StartTime),
		EndTime:                 pgTime(d.EndTime),
		EndDate:                 d.EndDate,
		Timezone:                strPtr(d.Timezone),
		ReservationDeadlineDate: d.ReservationDeadlineDate,
		Status:                  status,
		URLAddress:              strPtr(d.URLAddress),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainEventSlice converts a slice of event rows.
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
