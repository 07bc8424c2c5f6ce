package dto

import (
	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// RollupResponse is the four-bucket partition plus its net.
type RollupResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Salary  decimal.Decimal `json:"salary"`
	Stock   decimal.Decimal `json:"stock"`
	Net     decimal.Decimal `json:"net"`
}

// ToRollupResponse converts a domain rollup.
func ToRollupResponse(r domain.EventRollup) RollupResponse {
	return RollupResponse{
		Income:  r.Income,
		Expense: r.Expense,
		Salary:  r.Salary,
		Stock:   r.Stock,
		Net:     r.Net(),
	}
}

// DoneEventResponse pairs a completed event with its rollup.
type DoneEventResponse struct {
	Event  EventResponse  `json:"event"`
	Rollup RollupResponse `json:"rollup"`
}

// DoneEventsResponse lists completed events with per-event rollups and the
// grand totals over the same rows.
type DoneEventsResponse struct {
	Events []DoneEventResponse `json:"events"`
	Totals RollupResponse      `json:"totals"`
}

// ToDoneEventsResponse builds the done-events listing.
func ToDoneEventsResponse(reports []domain.DoneEventReport, totals domain.EventRollup) DoneEventsResponse {
	events := make([]DoneEventResponse, len(reports))
	for i, r := range reports {
		events[i] = DoneEventResponse{
			Event:  ToEventResponse(&reports[i].Event),
			Rollup: ToRollupResponse(r.Rollup),
		}
	}
	return DoneEventsResponse{Events: events, Totals: ToRollupResponse(totals)}
}
