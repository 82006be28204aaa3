package pgsql

import (
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	remissionRepo := newPgxRemissionRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:  customerRepo,
		OrderRepo:     orderRepo,
		RemissionRepo: remissionRepo,
		ReportingRepo: reportingRepo,
	}
}
