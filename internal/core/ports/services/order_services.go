package services

import (
	"context"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
)

// OrderSvcFacade defines the operations exposed by the order service.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
