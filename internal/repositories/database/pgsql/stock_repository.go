package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	"github.com/eventfin/event_finance_app/internal/models"
	"github.com/eventfin/event_finance_app/internal/utils/mapping"
)

const stockColumns = `id, price_per_kg, weight_kg, purchase_date, description, purchased_by,
	payment_method, created_at, updated_at`

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock purchases.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepository {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockRepository = (*PgxStockRepository)(nil)

func scanStockEntry(row pgx.Row) (models.StockEntry, error) {
	var m models.StockEntry
	err := row.Scan(
		&m.ID,
		&m.PricePerKg,
		&m.WeightKg,
		&m.PurchaseDate,
		&m.Description,
		&m.PurchasedBy,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// AppendStock inserts a purchase and returns it with its assigned id.
func (r *PgxStockRepository) AppendStock(ctx context.Context, entry domain.StockEntry) (*domain.StockEntry, error) {
	m := mapping.ToModelStockEntry(entry)

	query := `
		INSERT INTO stock (price_per_kg, weight_kg, purchase_date, description, purchased_by, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + stockColumns + `;
	`
	created, err := scanStockEntry(r.Pool.QueryRow(ctx, query,
		m.PricePerKg,
		m.WeightKg,
		m.PurchaseDate,
		m.Description,
		m.PurchasedBy,
		m.PaymentMethod,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to append stock purchase: %w", err)
	}

	d := mapping.ToDomainStockEntry(created)
	return &d, nil
}

// ListStock retrieves purchases newest id first; a non-nil id narrows the
// result to that single row (empty slice when it does not exist).
func (r *PgxStockRepository) ListStock(ctx context.Context, id *int64) ([]domain.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock`
	args := []any{}

	if id != nil {
		args = append(args, *id)
		query += " WHERE id = $1"
	}
	query += " ORDER BY id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock purchases: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockEntry, error) {
		return scanStockEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock purchases: %w", err)
	}
	return mapping.ToDomainStockEntrySlice(ms), nil
}
