package mapping

import (
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
)

// ToModelCreditAssignment converts a domain CreditAssignment to a model CreditAssignment
func ToModelCreditAssignment(d domain.CreditAssignment) models.CreditAssignment {
	return models.CreditAssignment{
		CreditID:    d.CreditID,
		RemissionID: d.RemissionID,
		Amount:      d.Amount,
		Reason:      d.Reason,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainCreditAssignment converts a model CreditAssignment to a domain CreditAssignment
func ToDomainCreditAssignment(m models.CreditAssignment) domain.CreditAssignment {
	return domain.CreditAssignment{
		CreditID:    m.CreditID,
		RemissionID: m.RemissionID,
		Amount:      m.Amount,
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainCreditAssignmentSlice converts a slice of model CreditAssignments to domain CreditAssignments
func ToDomainCreditAssignmentSlice(ms []models.CreditAssignment) []domain.CreditAssignment {
	ds := make([]domain.CreditAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditAssignment(m)
	}
	return ds
}
