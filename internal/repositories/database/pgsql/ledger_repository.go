package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	"github.com/eventfin/event_finance_app/internal/models"
	"github.com/eventfin/event_finance_app/internal/utils/mapping"
)

const ledgerColumns = `l.id, l.event_id, l.entry_type, l.category, l.description, l.amount,
	l.currency, l.entry_date, l.payment_method, l.counterparty, l.created_at, l.updated_at`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func scanLedgerEntry(row pgx.Row, withEventName bool) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	dest := []any{
		&m.ID,
		&m.EventID,
		&m.EntryType,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.Currency,
		&m.EntryDate,
		&m.PaymentMethod,
		&m.Counterparty,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
	if withEventName {
		dest = append(dest, &m.EventName)
	}
	err := row.Scan(dest...)
	return m, err
}

// AppendEntry inserts a ledger entry and returns it with its assigned id.
// Entries are append-only, there is no update path.
func (r *PgxLedgerRepository) AppendEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO event_ledger AS l
			(event_id, entry_type, category, description, amount, currency, entry_date, payment_method, counterparty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + ledgerColumns + `;
	`
	created, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query,
		m.EventID,
		m.EntryType,
		m.Category,
		m.Description,
		m.Amount,
		m.Currency,
		m.EntryDate,
		m.PaymentMethod,
		m.Counterparty,
	), false)
	if err != nil {
		return nil, fmt.Errorf("failed to append ledger entry for event %d: %w", entry.EventID, err)
	}

	d := mapping.ToDomainLedgerEntry(created)
	return &d, nil
}

// ListByEvent retrieves all entries for one event, newest entry_date first
// with id as tie-break.
func (r *PgxLedgerRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM event_ledger l
		WHERE l.event_id = $1
		ORDER BY l.entry_date DESC, l.id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger for event %d: %w", eventID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		return scanLedgerEntry(row, false)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger for event %d: %w", eventID, err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// ListEntries is the shared selection behind list pages and exports. Rows come
// back newest id first with the owning event's name joined in. An id filter
// wins over the range and category filters; category matches as a
// case-insensitive substring.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `, e.name AS event_name
		FROM event_ledger l
		JOIN events e ON e.id = l.event_id
		WHERE l.entry_type = $1`
	args := []any{string(filter.EntryType)}

	if filter.ID != nil {
		args = append(args, *filter.ID)
		query += fmt.Sprintf(" AND l.id = $%d", len(args))
	} else {
		if filter.Range.Start != nil {
			args = append(args, *filter.Range.Start)
			query += fmt.Sprintf(" AND l.entry_date >= $%d", len(args))
		}
		if filter.Range.End != nil {
			args = append(args, *filter.Range.End)
			query += fmt.Sprintf(" AND l.entry_date <= $%d", len(args))
		}
		if filter.Category != "" {
			args = append(args, "%"+filter.Category+"%")
			query += fmt.Sprintf(" AND l.category ILIKE $%d", len(args))
		}
	}
	query += " ORDER BY l.id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		return scanLedgerEntry(row, true)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// DeleteEntry hard-deletes by id and returns the deleted row.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	query := `DELETE FROM event_ledger AS l WHERE l.id = $1 RETURNING ` + ledgerColumns + `;`

	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("ledger entry %d not found", id))
		}
		return nil, fmt.Errorf("failed to delete ledger entry %d: %w", id, err)
	}

	d := mapping.ToDomainLedgerEntry(m)
	return &d, nil
}

// SumAmount totals amounts over the selected rows in SQL; zero when nothing
// matches. Category lists match exactly, unlike the substring list filter.
func (r *PgxLedgerRepository) SumAmount(ctx context.Context, filter domain.LedgerSumFilter) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(l.amount), 0) FROM event_ledger l WHERE l.entry_type = $1`
	args := []any{string(filter.EntryType)}

	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		query += fmt.Sprintf(" AND l.event_id = $%d", len(args))
	}
	if filter.Range.Start != nil {
		args = append(args, *filter.Range.Start)
		query += fmt.Sprintf(" AND l.entry_date >= $%d", len(args))
	}
	if filter.Range.End != nil {
		args = append(args, *filter.Range.End)
		query += fmt.Sprintf(" AND l.entry_date <= $%d", len(args))
	}
	if len(filter.CategoryIn) > 0 {
		args = append(args, filter.CategoryIn)
		query += fmt.Sprintf(" AND l.category = ANY($%d)", len(args))
	}
	if len(filter.CategoryNotIn) > 0 {
		args = append(args, filter.CategoryNotIn)
		query += fmt.Sprintf(" AND (l.category IS NULL OR NOT (l.category = ANY($%d)))", len(args))
	}

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger amounts: %w", err)
	}
	return sum, nil
}

// CountByEvent counts the ledger rows referencing one event.
func (r *PgxLedgerRepository) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM event_ledger WHERE event_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ledger entries for event %d: %w", eventID, err)
	}
	return count, nil
}
