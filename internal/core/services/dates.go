package services

import (
	"time"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
)

const dateLayout = "2006-01-02"

// parseDate parses an optional "YYYY-MM-DD" value; empty means absent.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date " + s + ", expected YYYY-MM-DD")
	}
	return &t, nil
}

// parseTimeOfDay parses an optional "HH:mm" value; empty means absent.
func parseTimeOfDay(s string) (*domain.TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid time " + s + ", expected HH:mm")
	}
	return &t, nil
}

// resolveEntryDate applies the "defaults to now" rule for ledger entry dates.
func resolveEntryDate(s string, now time.Time) (time.Time, error) {
	parsed, err := parseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if parsed == nil {
		return now, nil
	}
	return *parsed, nil
}
