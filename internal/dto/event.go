package dto

import (
	"strconv"
	"time"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// CreateEventRequest carries the event creation payload. Date fields take
// "YYYY-MM-DD", time fields "HH:mm".
type CreateEventRequest struct {
	Name                    string `json:"name" binding:"required"`
	Owner                   string `json:"owner" binding:"required"`
	Description             string `json:"description"`
	VenueName               string `json:"venue_name"`
	AddressLine1            string `json:"address_line1"`
	City                    string `json:"city"`
	Country                 string `json:"country"`
	EventDate               string `json:"event_date" binding:"omitempty,dateonly"`
	StartTime               string `json:"start_time" binding:"omitempty,timeofday"`
	EndTime                 string `json:"end_time" binding:"omitempty,timeofday"`
	EndDate                 string `json:"end_date" binding:"omitempty,dateonly"`
	Timezone                string `json:"timezone"`
	ReservationDeadlineDate string `json:"reservation_deadline_date" binding:"omitempty,dateonly"`
	Status                  string `json:"status" binding:"omitempty,oneof=upcoming done"`
	URLAddress              string `json:"url_address"`
}

// UpdateEventStatusRequest carries the status transition payload.
type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=upcoming done"`
}

// EventResponse is the wire shape of an event. The id is a decimal string so
// 64-bit values survive JSON number precision.
type EventResponse struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Owner                   string     `json:"owner"`
	Description             string     `json:"description,omitempty"`
	VenueName               string     `json:"venue_name,omitempty"`
	AddressLine1            string     `json:"address_line1,omitempty"`
	City                    string     `json:"city,omitempty"`
	Country                 string     `json:"country,omitempty"`
	EventDate               string     `json:"event_date,omitempty"`
	StartTime               string     `json:"start_time,omitempty"`
	EndTime                 string     `json:"end_time,omitempty"`
	EndDate                 string     `json:"end_date,omitempty"`
	Timezone                string     `json:"timezone,omitempty"`
	ReservationDeadlineDate string     `json:"reservation_deadline_date,omitempty"`
	Status                  string     `json:"status,omitempty"`
	URLAddress              string     `json:"url_address,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func timeString(t *domain.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// ToEventResponse converts a domain event to its wire shape.
func ToEventResponse(e *domain.Event) EventResponse {
	status := ""
	if e.Status != nil {
		status = string(*e.Status)
	}
	return EventResponse{
		ID:                      strconv.FormatInt(e.ID, 10),
		Name:                    e.Name,
		Owner:                   e.Owner,
		Description:             e.Description,
		VenueName:               e.VenueName,
		AddressLine1:            e.AddressLine1,
		City:                    e.City,
		Country:                 e.Country,
		EventDate:               dateString(e.EventDate),
		StartTime:               timeString(e.StartTime),
		EndTime:                 timeString(e.EndTime),
		EndDate:                 dateString(e.EndDate),
		Timezone:                e.Timezone,
		ReservationDeadlineDate: dateString(e.ReservationDeadlineDate),
		Status:                  status,
		URLAddress:              e.URLAddress,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}

// ToEventResponses converts a slice of domain events.
func ToEventResponses(events []domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses
}
