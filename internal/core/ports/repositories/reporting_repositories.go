package repositories

import (
	"context"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving sales report data
type ReportingRepository interface {
	// ListSalesInDateRange retrieves every sale, irrespective of remission,
	// whose creation date falls within [from, to] (calendar dates, inclusive).
	ListSalesInDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
}
