package dto

import (
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the payload to record a sale under a remission.
// Amounts are quantized to 2 decimal places on creation. CreatedAt is only
// honoured for backdating in seed/test scenarios.
type CreateSaleRequest struct {
	Subtotal  decimal.Decimal `json:"subtotal" binding:"gte=0"`
	Tax       decimal.Decimal `json:"tax" binding:"gte=0"`
	CreatedAt *time.Time      `json:"createdAt"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID      string          `json:"saleID"`
	RemissionID string          `json:"remissionID"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"` // Derived, subtotal+tax
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to a SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:      s.SaleID,
		RemissionID: s.RemissionID,
		Subtotal:    s.Subtotal,
		Tax:         s.Tax,
		Total:       s.Total(),
		CreatedAt:   s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain.Sale to []SaleResponse.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(&s)
	}
	return responses
}
