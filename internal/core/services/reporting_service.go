package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// DailySalesReport aggregates every sale whose calendar date falls in
// [from, to] into one row per date, sorted ascending. An inverted range
// (from after to) deterministically yields an empty report rather than an
// error.
func (s *reportingService) DailySalesReport(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error) {
	if from.After(to) {
		s.LogWarn(ctx, "Daily sales report requested with inverted range",
			slog.String("from", from.Format("2006-01-02")),
			slog.String("to", to.Format("2006-01-02")))
		return []domain.DailySalesRow{}, nil
	}

	sales, err := s.reportingRepo.ListSalesInDateRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve sales for daily report",
			slog.String("from", from.Format("2006-01-02")),
			slog.String("to", to.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to retrieve sales for daily report: %w", err)
	}

	rows := domain.GroupSalesByDay(sales)

	s.LogInfo(ctx, "Daily sales report generated",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.Int("row_count", len(rows)),
		slog.Int("sales_count", len(sales)))
	return rows, nil
}
