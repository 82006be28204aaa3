package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemissionStatus indicates the lifecycle state of a remission.
type RemissionStatus string

const (
	RemissionOpen   RemissionStatus = "open"
	RemissionClosed RemissionStatus = "closed"
	// The transition is one-way: a closed remission is never reopened.
)

// Remission is a delivery/invoice batch under an order. It groups the sales
// and credit assignments that the closing rules are evaluated against.
type Remission struct {
	RemissionID string          `json:"remissionID"` // Primary Key (UUID)
	OrderID     string          `json:"orderID"`
	Folio       string          `json:"folio"` // Unique business key
	Status      RemissionStatus `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IsClosed reports whether the remission reached its terminal state.
func (r Remission) IsClosed() bool {
	return r.Status == RemissionClosed
}

// RemissionSummary holds the aggregated financial figures of a remission.
type RemissionSummary struct {
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Balance      decimal.Decimal `json:"balance"`
	SalesCount   int             `json:"salesCount"`
}

// TotalSales sums subtotal+tax across the given sales. Zero for an empty set.
func TotalSales(sales []Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total())
	}
	return total
}

// TotalCredits sums the assigned credit amounts. Zero for an empty set.
func TotalCredits(credits []CreditAssignment) decimal.Decimal {
	total := decimal.Zero
	for _, c := range credits {
		total = total.Add(c.Amount)
	}
	return total
}

// Summarize computes the full aggregate view over a remission's children.
// Pure function; callers are responsible for passing a consistent snapshot.
func Summarize(sales []Sale, credits []CreditAssignment) RemissionSummary {
	totalSales := TotalSales(sales)
	totalCredits := TotalCredits(credits)
	return RemissionSummary{
		TotalSales:   totalSales,
		TotalCredits: totalCredits,
		Balance:      totalSales.Sub(totalCredits),
		SalesCount:   len(sales),
	}
}
