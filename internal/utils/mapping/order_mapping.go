package mapping

import (
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:    d.OrderID,
		CustomerID: d.CustomerID,
		Folio:      d.Folio,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:    m.OrderID,
		CustomerID: m.CustomerID,
		Folio:      m.Folio,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainOrderSlice converts a slice of model Orders to domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
