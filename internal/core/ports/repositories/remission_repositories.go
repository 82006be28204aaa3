package repositories

import (
	"context"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RemissionReader defines read operations for remission data
type RemissionReader interface {
	// FindRemissionByID retrieves a specific remission by its unique identifier.
	FindRemissionByID(ctx context.Context, remissionID string) (*domain.Remission, error)

	// ListRemissionsByOrder retrieves all remissions belonging to an order.
	ListRemissionsByOrder(ctx context.Context, orderID string) ([]domain.Remission, error)
}

// RemissionWriter defines write operations for remission data
type RemissionWriter interface {
	// SaveRemission persists a new remission. Returns apperrors.ErrDuplicate
	// when the folio is already taken.
	SaveRemission(ctx context.Context, remission domain.Remission) error

	// DeleteRemission removes a remission; the schema cascades to its sales
	// and credit assignments.
	DeleteRemission(ctx context.Context, remissionID string) error
}

// RemissionCloser defines the transactional operations used by the closing
// state machine. All methods run against the caller's open transaction so the
// precondition reads and the status write form one atomic unit.
type RemissionCloser interface {
	// FindRemissionByIDForUpdate retrieves a remission inside tx while taking
	// a row-level lock on it, serialising concurrent closes and child inserts.
	FindRemissionByIDForUpdate(ctx context.Context, tx pgx.Tx, remissionID string) (*domain.Remission, error)

	// FindSalesByRemissionIDInTx retrieves the remission's sales inside tx.
	FindSalesByRemissionIDInTx(ctx context.Context, tx pgx.Tx, remissionID string) ([]domain.Sale, error)

	// FindCreditsByRemissionIDInTx retrieves the remission's credits inside tx.
	FindCreditsByRemissionIDInTx(ctx context.Context, tx pgx.Tx, remissionID string) ([]domain.CreditAssignment, error)

	// UpdateRemissionStatusInTx writes the remission status inside tx.
	UpdateRemissionStatusInTx(ctx context.Context, tx pgx.Tx, remissionID string, status domain.RemissionStatus) error

	// SaveSaleInTx persists a sale inside tx.
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error

	// SaveCreditInTx persists a credit assignment inside tx.
	SaveCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditAssignment) error
}

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSalesByRemissionID retrieves all sales under a remission.
	FindSalesByRemissionID(ctx context.Context, remissionID string) ([]domain.Sale, error)
}

// SaleWriter defines non-transactional write operations for sale data
type SaleWriter interface {
	// UpdateSaleCreatedAt backdates a sale's creation timestamp. Used by the
	// seed tooling only; regular creation never rewrites timestamps.
	UpdateSaleCreatedAt(ctx context.Context, saleID string, createdAt time.Time) error
}

// CreditReader defines read operations for credit assignment data
type CreditReader interface {
	// FindCreditsByRemissionID retrieves all credit assignments under a remission.
	FindCreditsByRemissionID(ctx context.Context, remissionID string) ([]domain.CreditAssignment, error)
}

// RemissionRepositoryFacade combines all remission-related repository interfaces
type RemissionRepositoryFacade interface {
	RemissionReader
	RemissionWriter
	RemissionCloser
	SaleReader
	SaleWriter
	CreditReader
}

// RemissionRepositoryWithTx extends RemissionRepositoryFacade with transaction capabilities
type RemissionRepositoryWithTx interface {
	RemissionRepositoryFacade
	TransactionManager
}
