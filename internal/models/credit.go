package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditAssignment is the database representation of a credit note.
type CreditAssignment struct {
	CreditID    string          `json:"creditID"`
	RemissionID string          `json:"remissionID"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	CreatedAt   time.Time       `json:"createdAt"`
}
