package services

import (
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.CustomerRepo)
	container.Remission = NewRemissionService(repos.RemissionRepo, repos.OrderRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
