package domain_test

import (
	"testing"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSale_Total(t *testing.T) {
	s := domain.Sale{Subtotal: dec("100.00"), Tax: dec("16.00")}
	assert.True(t, dec("116.00").Equal(s.Total()))
}

func TestTotalSales(t *testing.T) {
	tests := []struct {
		name  string
		sales []domain.Sale
		want  string
	}{
		{
			name:  "no sales yields zero",
			sales: nil,
			want:  "0",
		},
		{
			name: "single sale",
			sales: []domain.Sale{
				{Subtotal: dec("100.00"), Tax: dec("16.00")},
			},
			want: "116.00",
		},
		{
			name: "multiple sales accumulate without drift",
			sales: []domain.Sale{
				{Subtotal: dec("0.10"), Tax: dec("0.02")},
				{Subtotal: dec("0.20"), Tax: dec("0.03")},
				{Subtotal: dec("0.30"), Tax: dec("0.05")},
			},
			want: "0.70",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.TotalSales(tt.sales)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestTotalCredits(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(domain.TotalCredits(nil)))

	credits := []domain.CreditAssignment{
		{Amount: dec("50.00")},
		{Amount: dec("70.00")},
	}
	assert.True(t, dec("120.00").Equal(domain.TotalCredits(credits)))
}

func TestSummarize(t *testing.T) {
	sales := []domain.Sale{
		{Subtotal: dec("100.00"), Tax: dec("16.00")},
		{Subtotal: dec("200.00"), Tax: dec("32.00")},
	}
	credits := []domain.CreditAssignment{
		{Amount: dec("48.00")},
	}

	summary := domain.Summarize(sales, credits)

	assert.True(t, dec("348.00").Equal(summary.TotalSales))
	assert.True(t, dec("48.00").Equal(summary.TotalCredits))
	assert.True(t, dec("300.00").Equal(summary.Balance))
	assert.Equal(t, 2, summary.SalesCount)
}

func TestSummarize_NegativeBalance(t *testing.T) {
	// Credits may exceed sales in a summary; only the close operation
	// forbids a negative balance.
	sales := []domain.Sale{
		{Subtotal: dec("100.00"), Tax: dec("16.00")},
	}
	credits := []domain.CreditAssignment{
		{Amount: dec("120.00")},
	}

	summary := domain.Summarize(sales, credits)
	assert.True(t, dec("-4.00").Equal(summary.Balance))
}

func TestGroupSalesByDay(t *testing.T) {
	today := time.Date(2025, 5, 12, 15, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	sales := []domain.Sale{
		{Subtotal: dec("100.00"), Tax: dec("16.00"), CreatedAt: today},
		{Subtotal: dec("200.00"), Tax: dec("32.00"), CreatedAt: yesterday},
	}

	rows := domain.GroupSalesByDay(sales)

	assert.Len(t, rows, 2)
	// Ascending by date: yesterday first.
	assert.Equal(t, time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.True(t, dec("232.00").Equal(rows[0].TotalSales))
	assert.True(t, dec("32.00").Equal(rows[0].TotalTax))
	assert.Equal(t, 1, rows[0].SalesCount)

	assert.Equal(t, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), rows[1].Date)
	assert.True(t, dec("116.00").Equal(rows[1].TotalSales))
	assert.Equal(t, 1, rows[1].SalesCount)
}

func TestGroupSalesByDay_SameDateCollapses(t *testing.T) {
	morning := time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 5, 12, 21, 45, 0, 0, time.UTC)

	sales := []domain.Sale{
		{Subtotal: dec("10.00"), Tax: dec("1.60"), CreatedAt: morning},
		{Subtotal: dec("20.00"), Tax: dec("3.20"), CreatedAt: evening},
	}

	rows := domain.GroupSalesByDay(sales)

	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].SalesCount)
	assert.True(t, dec("34.80").Equal(rows[0].TotalSales))
	assert.True(t, dec("4.80").Equal(rows[0].TotalTax))
}

func TestGroupSalesByDay_Empty(t *testing.T) {
	rows := domain.GroupSalesByDay(nil)
	assert.Empty(t, rows)
}
