package domain

import "time"

// EventStatus is the lifecycle state of an event. A missing status means the
// event has been created but not yet scheduled/completed; list views treat it
// like upcoming.
type EventStatus string

const (
	StatusUpcoming EventStatus = "upcoming"
	StatusDone     EventStatus = "done"
)

// Company placeholder identity. Financial entries that are not tied to a real
// event (company expenses, salaries) hang off this synthetic singleton row.
const (
	CompanyEventName  = "Company"
	CompanyEventOwner = "Company"
)

// Event is a tracked event that ledger entries reference.
type Event struct {
	ID                      int64        `json:"id"`
	Name                    string       `json:"name"`
	Owner                   string       `json:"owner"`
	Description             string       `json:"description"`
	VenueName               string       `json:"venueName"`
	AddressLine1            string       `json:"addressLine1"`
	City                    string       `json:"city"`
	Country                 string       `json:"country"`
	EventDate               *time.Time   `json:"eventDate"`
	StartTime               *TimeOfDay   `json:"startTime"`
	EndTime                 *TimeOfDay   `json:"endTime"`
	EndDate                 *time.Time   `json:"endDate"`
	Timezone                string       `json:"timezone"`
	ReservationDeadlineDate *time.Time   `json:"reservationDeadlineDate"`
	Status                  *EventStatus `json:"status"`
	URLAddress              string       `json:"urlAddress"`
	Timestamps
}

// IsCompanyPlaceholder reports whether this is the synthetic Company row.
func (e Event) IsCompanyPlaceholder() bool {
	return e.Name == CompanyEventName && e.Owner == CompanyEventOwner
}

// EventFilter narrows the upcoming-events listing. Name and City match as
// case-insensitive substrings, Date matches the calendar day of event_date.
type EventFilter struct {
	Name string
	City string
	Date *time.Time
}
