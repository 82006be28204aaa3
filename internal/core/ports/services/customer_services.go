package services

import (
	"context"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
)

// CustomerSvcFacade defines the operations exposed by the customer service.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
