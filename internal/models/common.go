package models

import "time"

// Timestamps holds the row timestamps every table carries.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
