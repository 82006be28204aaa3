package dto

import (
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailySalesRowResponse represents a single per-date aggregate in the daily
// sales report response.
type DailySalesRowResponse struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	TotalSales decimal.Decimal `json:"totalSales"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	SalesCount int             `json:"salesCount"`
}

// DailySalesReportResponse represents the daily sales report response.
type DailySalesReportResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Rows     []DailySalesRowResponse `json:"rows"`
}

// ToDailySalesReportResponse converts domain report rows to a DTO response.
func ToDailySalesReportResponse(rows []domain.DailySalesRow, from, to time.Time) DailySalesReportResponse {
	response := DailySalesReportResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Rows:     make([]DailySalesRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = DailySalesRowResponse{
			Date:       row.Date.Format("2006-01-02"),
			TotalSales: row.TotalSales,
			TotalTax:   row.TotalTax,
			SalesCount: row.SalesCount,
		}
	}
	return response
}
