package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers receive.
type ServiceContainer struct {
	Event     EventSvcFacade
	Ledger    LedgerSvcFacade
	Stock     StockSvcFacade
	Reporting ReportingSvcFacade
}
