package domain

import "time"

// Timestamps holds the store-assigned row timestamps shared by all entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateRange is an optional [Start .. End] window. A nil bound means open-ended
// on that side; both bounds are inclusive when present.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether no bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}
