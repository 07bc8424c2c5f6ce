package domain

import "github.com/shopspring/decimal"

// EventRollup is the four-way partition of a ledger scope plus its net. Every
// ledger row lands in exactly one bucket: income by type; salary by type or the
// legacy expense/Salary encoding; stock by expense/Stock; expense is whatever
// expense rows remain.
type EventRollup struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Salary  decimal.Decimal `json:"salary"`
	Stock   decimal.Decimal `json:"stock"`
}

// Net is income minus every cost bucket.
func (r EventRollup) Net() decimal.Decimal {
	return r.Income.Sub(r.Expense).Sub(r.Salary).Sub(r.Stock)
}

// Add accumulates another rollup into this one, for grand totals across events.
func (r EventRollup) Add(o EventRollup) EventRollup {
	return EventRollup{
		Income:  r.Income.Add(o.Income),
		Expense: r.Expense.Add(o.Expense),
		Salary:  r.Salary.Add(o.Salary),
		Stock:   r.Stock.Add(o.Stock),
	}
}

// DoneEventReport pairs a completed event with its ledger rollup.
type DoneEventReport struct {
	Event  Event       `json:"event"`
	Rollup EventRollup `json:"rollup"`
}

// CategoryTotal is one line of a per-category breakdown. Order of appearance in
// the underlying row set is preserved.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// LedgerTotals summarizes one filtered ledger page.
type LedgerTotals struct {
	Total      decimal.Decimal `json:"total"`
	ByCategory []CategoryTotal `json:"byCategory"`
}

// StockTotals summarizes the stock page. TotalCost sums per-row price x weight;
// prices vary per row, so it cannot be derived from the two sums.
type StockTotals struct {
	TotalWeight decimal.Decimal `json:"totalWeight"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}
