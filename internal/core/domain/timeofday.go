package domain

import (
	"encoding/json"
	"fmt"
)

// TimeOfDay is a wall-clock time without a date. Event start/end times carry no
// date component, so they are modelled here instead of anchoring a sentinel date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:mm" input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

// TimeOfDayFromMicroseconds converts a microseconds-since-midnight value, the
// representation pgx uses for TIME columns.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	minutes := us / 1_000_000 / 60
	return TimeOfDay{Hour: int(minutes / 60), Minute: int(minutes % 60)}
}

// Microseconds returns the value as microseconds since midnight.
func (t TimeOfDay) Microseconds() int64 {
	return (int64(t.Hour)*3600 + int64(t.Minute)*60) * 1_000_000
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
