package dto

import (
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCreditRequest defines the payload to assign a credit to a remission.
// Amount is strictly positive, unlike a sale's subtotal/tax.
type CreateCreditRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Reason string          `json:"reason" binding:"required"`
}

// CreditResponse defines the data returned for a credit assignment.
type CreditResponse struct {
	CreditID    string          `json:"creditID"`
	RemissionID string          `json:"remissionID"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToCreditResponse converts a domain.CreditAssignment to a CreditResponse DTO.
func ToCreditResponse(c *domain.CreditAssignment) CreditResponse {
	return CreditResponse{
		CreditID:    c.CreditID,
		RemissionID: c.RemissionID,
		Amount:      c.Amount,
		Reason:      c.Reason,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCreditResponses converts a slice of domain.CreditAssignment to []CreditResponse.
func ToCreditResponses(credits []domain.CreditAssignment) []CreditResponse {
	responses := make([]CreditResponse, len(credits))
	for i, c := range credits {
		responses[i] = ToCreditResponse(&c)
	}
	return responses
}
