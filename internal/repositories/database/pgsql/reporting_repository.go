package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
	"github.com/davidmr-dev/remission_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// ListSalesInDateRange retrieves every sale whose local calendar date falls
// within [from, to], across all remissions. Grouping happens in the service
// via the domain aggregation engine.
func (r *reportingRepository) ListSalesInDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, remission_id, subtotal, tax, created_at
		FROM sales
		WHERE created_at::date >= $1::date AND created_at::date <= $2::date
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales in date range: %w", err)
	}
	defer rows.Close()

	var modelSales []models.Sale
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.RemissionID, &m.Subtotal, &m.Tax, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning sale row: %w", err)
		}
		modelSales = append(modelSales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	if len(modelSales) == 0 {
		// Return empty slice instead of nil
		return []domain.Sale{}, nil
	}

	return mapping.ToDomainSaleSlice(modelSales), nil
}
