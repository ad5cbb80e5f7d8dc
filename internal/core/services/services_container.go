package services

import (
	portsevents "github.com/SscSPs/money_tracker_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portsevents.TransactionEventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, WithEventPublisher(publisher)),
		Category:    NewCategoryService(repos.CategoryRepo),
		Reporting:   NewReportingService(repos.TransactionRepo, repos.ReportingRepo),
		Seed:        NewSeedService(repos.CategoryRepo, repos.TransactionRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.CategorySvc          = (*categoryService)(nil)
	_ portssvc.ReportingService     = (*reportingService)(nil)
	_ portssvc.SeedSvc              = (*seedService)(nil)
)
