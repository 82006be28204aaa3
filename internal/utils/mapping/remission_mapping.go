package mapping

import (
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
)

// ToModelRemission converts a domain Remission to a model Remission
func ToModelRemission(d domain.Remission) models.Remission {
	return models.Remission{
		RemissionID: d.RemissionID,
		OrderID:     d.OrderID,
		Folio:       d.Folio,
		Status:      models.RemissionStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainRemission converts a model Remission to a domain Remission
func ToDomainRemission(m models.Remission) domain.Remission {
	return domain.Remission{
		RemissionID: m.RemissionID,
		OrderID:     m.OrderID,
		Folio:       m.Folio,
		Status:      domain.RemissionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainRemissionSlice converts a slice of model Remissions to domain Remissions
func ToDomainRemissionSlice(ms []models.Remission) []domain.Remission {
	ds := make([]domain.Remission, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRemission(m)
	}
	return ds
}
