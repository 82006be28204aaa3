package dto

import (
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRemissionRequest defines the payload to create a remission.
type CreateRemissionRequest struct {
	OrderID string `json:"orderID" binding:"required"`
	Folio   string `json:"folio" binding:"required"`
}

// RemissionResponse defines the data returned for a remission.
type RemissionResponse struct {
	RemissionID string    `json:"remissionID"`
	OrderID     string    `json:"orderID"`
	Folio       string    `json:"folio"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RemissionSummaryResponse defines the aggregate view returned for a remission.
type RemissionSummaryResponse struct {
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Balance      decimal.Decimal `json:"balance"`
	SalesCount   int             `json:"salesCount"`
}

// ToRemissionResponse converts a domain.Remission to a RemissionResponse DTO.
func ToRemissionResponse(r *domain.Remission) RemissionResponse {
	return RemissionResponse{
		RemissionID: r.RemissionID,
		OrderID:     r.OrderID,
		Folio:       r.Folio,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

// ToRemissionResponses converts a slice of domain.Remission to []RemissionResponse.
func ToRemissionResponses(remissions []domain.Remission) []RemissionResponse {
	responses := make([]RemissionResponse, len(remissions))
	for i, r := range remissions {
		responses[i] = ToRemissionResponse(&r)
	}
	return responses
}

// ToRemissionSummaryResponse converts a domain.RemissionSummary to its DTO.
func ToRemissionSummaryResponse(s domain.RemissionSummary) RemissionSummaryResponse {
	return RemissionSummaryResponse{
		TotalSales:   s.TotalSales,
		TotalCredits: s.TotalCredits,
		Balance:      s.Balance,
		SalesCount:   s.SalesCount,
	}
}
