package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesRow is one per-date aggregate in the daily sales report.
type DailySalesRow struct {
	Date       time.Time       `json:"date"` // Calendar date, midnight local time
	TotalSales decimal.Decimal `json:"totalSales"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	SalesCount int             `json:"salesCount"`
}

// GroupSalesByDay buckets sales by the calendar date of their creation
// timestamp (local date, not the full timestamp) and returns one row per
// date that has at least one sale, sorted ascending. Dates with no sales
// produce no row.
func GroupSalesByDay(sales []Sale) []DailySalesRow {
	buckets := make(map[time.Time]*DailySalesRow)
	for _, s := range sales {
		y, m, d := s.CreatedAt.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, s.CreatedAt.Location())
		row, ok := buckets[day]
		if !ok {
			row = &DailySalesRow{Date: day, TotalSales: decimal.Zero, TotalTax: decimal.Zero}
			buckets[day] = row
		}
		row.TotalSales = row.TotalSales.Add(s.Total())
		row.TotalTax = row.TotalTax.Add(s.Tax)
		row.SalesCount++
	}

	rows := make([]DailySalesRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}
