package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container.
type RepositoryProvider struct {
	EventRepo  EventRepository
	LedgerRepo LedgerRepository
	StockRepo  StockRepository
}
