package dto

import (
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
)

// CreateOrderRequest defines the payload to create an order.
type CreateOrderRequest struct {
	CustomerID string `json:"customerID" binding:"required"`
	Folio      string `json:"folio" binding:"required"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID    string    `json:"orderID"`
	CustomerID string    `json:"customerID"`
	Folio      string    `json:"folio"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToOrderResponse converts a domain.Order to an OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		Folio:      o.Folio,
		CreatedAt:  o.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain.Order to []OrderResponse.
func ToOrderResponses(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(&o)
	}
	return responses
}
