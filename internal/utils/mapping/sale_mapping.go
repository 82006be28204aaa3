package mapping

import (
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:      d.SaleID,
		RemissionID: d.RemissionID,
		Subtotal:    d.Subtotal,
		Tax:         d.Tax,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:      m.SaleID,
		RemissionID: m.RemissionID,
		Subtotal:    m.Subtotal,
		Tax:         m.Tax,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainSaleSlice converts a slice of model Sales to domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
