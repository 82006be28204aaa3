package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the database representation of a sale line-item.
// The total column does not exist; it is always derived.
type Sale struct {
	SaleID      string          `json:"saleID"`
	RemissionID string          `json:"remissionID"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	CreatedAt   time.Time       `json:"createdAt"`
}
