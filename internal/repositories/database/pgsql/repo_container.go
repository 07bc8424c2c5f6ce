package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EventRepo:  newPgxEventRepository(dbPool),
		LedgerRepo: newPgxLedgerRepository(dbPool),
		StockRepo:  newPgxStockRepository(dbPool),
	}
}
