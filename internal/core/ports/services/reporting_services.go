package services

import (
	"context"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
)

// ReportingSvc defines the operations exposed by the reporting service.
type ReportingSvc interface {
	// DailySalesReport aggregates all sales in [from, to] (inclusive calendar
	// dates) into per-date rows sorted ascending. A from bound after the to
	// bound yields an empty report.
	DailySalesReport(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error)
}
