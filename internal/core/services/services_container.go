package services

import (
	portsrepo "github.com/eventfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventfin/event_finance_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the repository
// provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Event:     NewEventService(repos.EventRepo, repos.LedgerRepo),
		Ledger:    NewLedgerService(repos.LedgerRepo, repos.EventRepo),
		Stock:     NewStockService(repos.StockRepo),
		Reporting: NewReportingService(repos.EventRepo, repos.LedgerRepo),
	}
}
