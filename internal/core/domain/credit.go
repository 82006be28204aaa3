package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditAssignment is a credit note reducing the effective balance owed on a
// remission. Amount is strictly positive (floor 0.01, unlike a sale's 0.00).
type CreditAssignment struct {
	CreditID    string          `json:"creditID"` // Primary Key (UUID)
	RemissionID string          `json:"remissionID"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	CreatedAt   time.Time       `json:"createdAt"`
}
