package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a single revenue line-item under a remission. Subtotal and tax are
// stored quantized to 2 decimal places and are never negative.
type Sale struct {
	SaleID      string          `json:"saleID"` // Primary Key (UUID)
	RemissionID string          `json:"remissionID"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Total is the derived amount of the sale. It is always recomputed from
// subtotal and tax, never stored.
func (s Sale) Total() decimal.Decimal {
	return s.Subtotal.Add(s.Tax)
}
