package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType partitions the ledger into income, expense and salary entries.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
	EntrySalary  EntryType = "salary"
)

// Category labels with aggregation significance. Legacy rows written before the
// salary entry type existed carry entry_type=expense with category=Salary; stock
// costs are recorded as expense rows with category=Stock. Aggregation treats
// both specially so neither leaks into plain expense totals.
const (
	CategorySalary = "Salary"
	CategoryStock  = "Stock"
)

// UncategorizedKey is the sentinel label used for entries without a category in
// per-category breakdowns.
const UncategorizedKey = "(uncategorized)"

// LedgerEntry is one income/expense/salary record tied to an event (or the
// Company placeholder). Append-only: entries are created and deleted, never
// updated.
type LedgerEntry struct {
	ID            int64           `json:"id"`
	EventID       int64           `json:"eventId"`
	EventName     string          `json:"eventName"` // populated on joined reads, not stored
	EntryType     EntryType       `json:"entryType"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EntryDate     time.Time       `json:"entryDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Counterparty  string          `json:"counterparty"`
	Timestamps
}

// IsSalary reports whether the row counts as salary for aggregation, covering
// both the canonical salary type and the legacy expense/Salary encoding.
func (e LedgerEntry) IsSalary() bool {
	return e.EntryType == EntrySalary || (e.EntryType == EntryExpense && e.Category == CategorySalary)
}

// IsStockCost reports whether the row counts as a stock cost.
func (e LedgerEntry) IsStockCost() bool {
	return e.EntryType == EntryExpense && e.Category == CategoryStock
}

// LedgerFilter is the single selection shape shared by list views and exports,
// so the two always agree on the row set. When ID is set it wins over the range
// and category filters. Category matches as a case-insensitive substring.
type LedgerFilter struct {
	EntryType EntryType
	ID        *int64
	Range     DateRange
	Category  string
}

// LedgerSumFilter selects rows for a single aggregate sum.
type LedgerSumFilter struct {
	EntryType     EntryType
	EventID       *int64
	Range         DateRange
	CategoryIn    []string
	CategoryNotIn []string
}
