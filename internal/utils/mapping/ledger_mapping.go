package mapping

import (
	"github.com/eventfin/event_finance_app/internal/core/domain"
	"github.com/eventfin/event_finance_app/internal/models"
)

// ToDomainLedgerEntry converts an event_ledger row to the domain shape.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:            m.ID,
		EventID:       m.EventID,
		EventName:     m.EventName,
		EntryType:     domain.EntryType(m.EntryType),
		Category:      strOrEmpty(m.Category),
		Description:   strOrEmpty(m.Description),
		Amount:        m.Amount,
		Currency:      m.Currency,
		EntryDate:     m.EntryDate,
		PaymentMethod: strOrEmpty(m.PaymentMethod),
		Counterparty:  strOrEmpty(m.Counterparty),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelLedgerEntry converts a domain entry to its row shape.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		ID:            d.ID,
		EventID:       d.EventID,
		EntryType:     string(d.EntryType),
		Category:      strPtr(d.Category),
		Description:   strPtr(d.Description),
		Amount:        d.Amount,
		Currency:      d.Currency,
		EntryDate:     d.EntryDate,
		PaymentMethod: strPtr(d.PaymentMethod),
		Counterparty:  strPtr(d.Counterparty),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainLedgerEntrySlice converts a slice of ledger rows.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
