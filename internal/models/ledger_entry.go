package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the event_ledger table. EventName is a join artifact
// (events.name) present only on joined reads.
type LedgerEntry struct {
	ID            int64           `db:"id"`
	EventID       int64           `db:"event_id"`
	EntryType     string          `db:"entry_type"`
	Category      *string         `db:"category"`
	Description   *string         `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	EntryDate     time.Time       `db:"entry_date"`
	PaymentMethod *string         `db:"payment_method"`
	Counterparty  *string         `db:"counterparty"`
	EventName     string          `db:"event_name"`
	Timestamps
}
