package services

import (
	"context"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
)

// RemissionSvcFacade defines the operations exposed by the remission service,
// including the open→closed state machine and the aggregate summary read.
type RemissionSvcFacade interface {
	CreateRemission(ctx context.Context, req dto.CreateRemissionRequest) (*domain.Remission, error)
	GetRemissionByID(ctx context.Context, remissionID string) (*domain.Remission, error)
	ListRemissionsByOrder(ctx context.Context, orderID string) ([]domain.Remission, error)
	DeleteRemission(ctx context.Context, remissionID string) error

	// AddSale records a sale under an open remission.
	AddSale(ctx context.Context, remissionID string, req dto.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context, remissionID string) ([]domain.Sale, error)

	// AddCredit assigns a credit to an open remission.
	AddCredit(ctx context.Context, remissionID string, req dto.CreateCreditRequest) (*domain.CreditAssignment, error)
	ListCredits(ctx context.Context, remissionID string) ([]domain.CreditAssignment, error)

	// CloseRemission transitions the remission from open to closed after the
	// closing rules pass. The rule checks and the status write are atomic.
	CloseRemission(ctx context.Context, remissionID string) error

	// SummarizeRemission returns the aggregate totals for a remission without
	// mutating any state.
	SummarizeRemission(ctx context.Context, remissionID string) (*domain.RemissionSummary, error)
}
