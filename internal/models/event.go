package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Event mirrors the events table. Nullable columns use pointers; start/end
// times are TIME columns scanned through pgtype.Time.
type Event struct {
	ID                      int64       `db:"id"`
	Name                    string      `db:"name"`
	Owner                   string      `db:"owner"`
	Description             *string     `db:"description"`
	VenueName               *string     `db:"venue_name"`
	AddressLine1            *string     `db:"address_line1"`
	City                    *string     `db:"city"`
	Country                 *string     `db:"country"`
	EventDate               *time.Time  `db:"event_date"`
	StartTime               pgtype.Time `db:"start_time"`
	EndTime                 pgtype.Time `db:"end_time"`
	EndDate                 *time.Time  `db:"end_date"`
	Timezone                *string     `db:"timezone"`
	ReservationDeadlineDate *time.Time  `db:"reservation_deadline_date"`
	Status                  *string     `db:"status"`
	URLAddress              *string     `db:"url_address"`
	Timestamps
}
