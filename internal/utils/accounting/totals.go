// Package accounting holds the pure aggregation arithmetic shared by list
// pages, rollups and exports.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// LedgerTotal sums the amounts of a filtered row set.
func LedgerTotal(entries []domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotals builds the per-category breakdown in a single pass. Entries
// without a category fall under the "(uncategorized)" sentinel; categories keep
// their first-seen order.
func CategoryTotals(entries []domain.LedgerEntry) []domain.CategoryTotal {
	index := make(map[string]int, len(entries))
	totals := make([]domain.CategoryTotal, 0, len(entries))
	for _, e := range entries {
		key := e.Category
		if key == "" {
			key = domain.UncategorizedKey
		}
		if i, ok := index[key]; ok {
			totals[i].Amount = totals[i].Amount.Add(e.Amount)
			continue
		}
		index[key] = len(totals)
		totals = append(totals, domain.CategoryTotal{Category: key, Amount: e.Amount})
	}
	return totals
}

// RollupEntries partitions rows into the income/expense/salary/stock buckets.
// Each row lands in at most one bucket; entry types outside the partition are
// ignored. The repository-level sums are preferred in request paths, this
// in-memory version backs event-scoped pages that already hold the rows.
func RollupEntries(entries []domain.LedgerEntry) domain.EventRollup {
	r := domain.EventRollup{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Salary:  decimal.Zero,
		Stock:   decimal.Zero,
	}
	for _, e := range entries {
		switch {
		case e.EntryType == domain.EntryIncome:
			r.Income = r.Income.Add(e.Amount)
		case e.IsSalary():
			r.Salary = r.Salary.Add(e.Amount)
		case e.IsStockCost():
			r.Stock = r.Stock.Add(e.Amount)
		case e.EntryType == domain.EntryExpense:
			r.Expense = r.Expense.Add(e.Amount)
		}
	}
	return r
}

// StockTotals sums weight and per-row cost over a stock row set. Cost is
// accumulated per row because price varies between purchases.
func StockTotals(entries []domain.StockEntry) domain.StockTotals {
	t := domain.StockTotals{TotalWeight: decimal.Zero, TotalCost: decimal.Zero}
	for _, e := range entries {
		t.TotalWeight = t.TotalWeight.Add(e.WeightKg)
		t.TotalCost = t.TotalCost.Add(e.TotalCost())
	}
	return t
}
