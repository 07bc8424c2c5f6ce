package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventfin/event_finance_app/internal/apperrors"
	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	"github.com/eventfin/event_finance_app/internal/models"
	"github.com/eventfin/event_finance_app/internal/utils/mapping"
)

const eventColumns = `id, name, owner, description, venue_name, address_line1, city, country,
	event_date, start_time, end_time, end_date, timezone, reservation_deadline_date,
	status, url_address, created_at, updated_at`

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Owner,
		&m.Description,
		&m.VenueName,
		&m.AddressLine1,
		&m.City,
		&m.Country,
		&m.EventDate,
		&m.StartTime,
		&m.EndTime,
		&m.EndDate,
		&m.Timezone,
		&m.ReservationDeadlineDate,
		&m.Status,
		&m.URLAddress,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectEvents(rows pgx.Rows) ([]models.Event, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEvent(row)
	})
}

// CreateEvent inserts a new event and returns it with its assigned id.
func (r *PgxEventRepository) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	m := mapping.ToModelEvent(event)

	query := `
		INSERT INTO events (name, owner, description, venue_name, address_line1, city, country,
			event_date, start_time, end_time, end_date, timezone, reservation_deadline_date,
			status, url_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + eventColumns + `;
	`
	created, err := scanEvent(r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Owner,
		m.Description,
		m.VenueName,
		m.AddressLine1,
		m.City,
		m.Country,
		m.EventDate,
		m.StartTime,
		m.EndTime,
		m.EndDate,
		m.Timezone,
		m.ReservationDeadlineDate,
		m.Status,
		m.URLAddress,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event %s: %w", event.Name, err)
	}

	d := mapping.ToDomainEvent(created)
	return &d, nil
}

// FindEventByID retrieves an event by its id.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1;`

	m, err := scanEvent(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %d not found", id))
		}
		return nil, fmt.Errorf("failed to find event %d: %w", id, err)
	}

	d := mapping.ToDomainEvent(m)
	return &d, nil
}

// UpdateEventStatus updates only the status column and returns the updated row.
func (r *PgxEventRepository) UpdateEventStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error) {
	query := `
		UPDATE events
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + eventColumns + `;
	`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %d not found", id))
		}
		return nil, fmt.Errorf("failed to update status of event %d: %w", id, err)
	}

	d := mapping.ToDomainEvent(m)
	return &d, nil
}

// DeleteEvent hard-deletes the event and returns the deleted row. The
// event_ledger foreign key is ON DELETE RESTRICT, so the database refuses the
// delete if the service-level guard was raced.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, id int64) (*domain.Event, error) {
	query := `DELETE FROM events WHERE id = $1 RETURNING ` + eventColumns + `;`

	m, err := scanEvent(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %d not found", id))
		}
		return nil, fmt.Errorf("failed to delete event %d: %w", id, err)
	}

	d := mapping.ToDomainEvent(m)
	return &d, nil
}

// ListUpcomingEvents retrieves events whose status is upcoming or unset,
// soonest event_date first with undated events last. Name and city match as
// case-insensitive substrings, the date filter matches the calendar day.
func (r *PgxEventRepository) ListUpcomingEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE (status IS NULL OR status = 'upcoming')`
	args := []any{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		query += fmt.Sprintf(" AND city ILIKE $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND event_date = $%d", len(args))
	}
	query += " ORDER BY event_date ASC NULLS LAST, id ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	ms, err := collectEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan upcoming events: %w", err)
	}
	return mapping.ToDomainEventSlice(ms), nil
}

// ListDoneEvents retrieves done events newest first. When a range is given an
// event qualifies if its [event_date, end_date-or-event_date] interval
// overlaps it.
func (r *PgxEventRepository) ListDoneEvents(ctx context.Context, dateRange domain.DateRange) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = 'done'`
	args := []any{}

	if dateRange.Start != nil {
		args = append(args, *dateRange.Start)
		query += fmt.Sprintf(" AND COALESCE(end_date, event_date) >= $%d", len(args))
	}
	if dateRange.End != nil {
		args = append(args, *dateRange.End)
		query += fmt.Sprintf(" AND event_date <= $%d", len(args))
	}
	query += " ORDER BY event_date DESC NULLS LAST, id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query done events: %w", err)
	}
	defer rows.Close()

	ms, err := collectEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan done events: %w", err)
	}
	return mapping.ToDomainEventSlice(ms), nil
}

// GetOrCreateCompanyEvent returns the Company placeholder event, creating it on
// first use. A partial unique index guards the singleton, so concurrent
// creators collapse onto one row: the insert is ON CONFLICT DO NOTHING and the
// follow-up select reads whichever insert won.
func (r *PgxEventRepository) GetOrCreateCompanyEvent(ctx context.Context) (*domain.Event, error) {
	insert := `
		INSERT INTO events (name, owner, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, owner) WHERE name = 'Company' AND owner = 'Company' DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, insert,
		domain.CompanyEventName, domain.CompanyEventOwner, string(domain.StatusDone)); err != nil {
		return nil, fmt.Errorf("failed to ensure company placeholder: %w", err)
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE name = $1 AND owner = $2 ORDER BY id ASC LIMIT 1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, domain.CompanyEventName, domain.CompanyEventOwner))
	if err != nil {
		return nil, fmt.Errorf("failed to load company placeholder: %w", err)
	}

	d := mapping.ToDomainEvent(m)
	return &d, nil
}
