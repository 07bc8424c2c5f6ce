package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// CreateLedgerEntryRequest carries an event-scoped ledger append. Amount zero
// is legal, so no required tag; non-negativity is checked in the service.
type CreateLedgerEntryRequest struct {
	EntryType     string          `json:"entry_type" binding:"required,oneof=income expense salary"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EntryDate     string          `json:"entry_date" binding:"omitempty,dateonly"`
	PaymentMethod string          `json:"payment_method"`
	Counterparty  string          `json:"counterparty"`
}

// CompanyExpenseRequest carries a company-scoped expense; the entry type is
// implied.
type CompanyExpenseRequest struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EntryDate     string          `json:"entry_date" binding:"omitempty,dateonly"`
	PaymentMethod string          `json:"payment_method"`
}

// SalaryRequest carries a company-scoped salary payment. Employee maps to the
// entry's counterparty.
type SalaryRequest struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EntryDate     string          `json:"entry_date" binding:"omitempty,dateonly"`
	PaymentMethod string          `json:"payment_method"`
	Employee      string          `json:"employee"`
}

// LedgerEntryResponse is the wire shape of one ledger entry.
type LedgerEntryResponse struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	EventName     string          `json:"event_name,omitempty"`
	EntryType     string          `json:"entry_type"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EntryDate     string          `json:"entry_date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Counterparty  string          `json:"counterparty,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToLedgerEntryResponse converts a domain entry to its wire shape.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:            strconv.FormatInt(e.ID, 10),
		EventID:       strconv.FormatInt(e.EventID, 10),
		EventName:     e.EventName,
		EntryType:     string(e.EntryType),
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		Currency:      e.Currency,
		EntryDate:     e.EntryDate.Format("2006-01-02"),
		PaymentMethod: e.PaymentMethod,
		Counterparty:  e.Counterparty,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}

// CategoryTotalResponse is one per-category breakdown line.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// LedgerListResponse is a filtered ledger page: rows plus the totals computed
// over exactly the same row set.
type LedgerListResponse struct {
	Entries    []LedgerEntryResponse   `json:"entries"`
	Total      decimal.Decimal         `json:"total"`
	ByCategory []CategoryTotalResponse `json:"by_category"`
}

// ToLedgerListResponse builds the page response from rows and their totals.
func ToLedgerListResponse(entries []domain.LedgerEntry, totals domain.LedgerTotals) LedgerListResponse {
	byCategory := make([]CategoryTotalResponse, len(totals.ByCategory))
	for i, ct := range totals.ByCategory {
		byCategory[i] = CategoryTotalResponse{Category: ct.Category, Amount: ct.Amount}
	}
	return LedgerListResponse{
		Entries:    ToLedgerEntryResponses(entries),
		Total:      totals.Total,
		ByCategory: byCategory,
	}
}

// EventLedgerResponse is the per-event ledger view: rows newest first plus the
// rollup header figures.
type EventLedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Totals  RollupResponse        `json:"totals"`
}
