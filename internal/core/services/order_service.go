package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/davidmr-dev/remission_tracker_app/internal/apperrors"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
)

// ErrCustomerInactive is returned when an order references a deactivated customer.
var ErrCustomerInactive = errors.New("customer is not active")

// orderService provides order management operations.
type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, customerRepo: customerRepo}
}

// Ensure orderService implements the portssvc.OrderSvcFacade interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrCustomerInactive, req.CustomerID)
	}

	order := domain.Order{
		OrderID:    uuid.NewString(),
		CustomerID: req.CustomerID,
		Folio:      req.Folio,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: folio %s", apperrors.ErrDuplicate, req.Folio)
		}
		s.LogError(ctx, err, "Failed to save order", slog.String("folio", req.Folio))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	// The schema cascades the deletion to the order's remissions and below.
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	return nil
}
