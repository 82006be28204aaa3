package repositories

import (
	"context"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its unique identifier.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves all orders ordered by creation time.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists a new order. Returns apperrors.ErrDuplicate when the
	// folio is already taken.
	SaveOrder(ctx context.Context, order domain.Order) error

	// DeleteOrder removes an order; the schema cascades to its remissions.
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
