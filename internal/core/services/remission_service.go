package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/davidmr-dev/remission_tracker_app/internal/apperrors"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
)

var (
	// ErrEmptySaleSet is returned when a close is attempted on a remission
	// with no associated sales.
	ErrEmptySaleSet = errors.New("cannot close a remission with no sales")

	// ErrCreditsExceedSales is returned when the aggregated credits exceed the
	// aggregated sales at close time. The wrapped message carries both totals.
	ErrCreditsExceedSales = errors.New("credits exceed total sales")

	// ErrAlreadyClosed is returned when a close is attempted on a remission
	// already in its terminal state. Re-closing is a validation failure, not
	// a no-op.
	ErrAlreadyClosed = errors.New("remission is already closed")

	// ErrRemissionClosed is returned when a sale or credit is added to a
	// closed remission.
	ErrRemissionClosed = errors.New("remission is closed")

	// ErrNegativeAmount is returned when a sale carries a negative subtotal or tax.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNonPositiveAmount is returned when a credit amount is not strictly positive.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// remissionService provides remission lifecycle operations, including the
// open→closed state machine and the aggregate summary read.
type remissionService struct {
	BaseService
	remissionRepo portsrepo.RemissionRepositoryWithTx
	orderRepo     portsrepo.OrderReader
}

// NewRemissionService creates a new RemissionService.
func NewRemissionService(remissionRepo portsrepo.RemissionRepositoryWithTx, orderRepo portsrepo.OrderReader) portssvc.RemissionSvcFacade {
	return &remissionService{
		remissionRepo: remissionRepo,
		orderRepo:     orderRepo,
	}
}

// Ensure remissionService implements the portssvc.RemissionSvcFacade interface
var _ portssvc.RemissionSvcFacade = (*remissionService)(nil)

func (s *remissionService) CreateRemission(ctx context.Context, req dto.CreateRemissionRequest) (*domain.Remission, error) {
	if _, err := s.orderRepo.FindOrderByID(ctx, req.OrderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, req.OrderID)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	remission := domain.Remission{
		RemissionID: uuid.NewString(),
		OrderID:     req.OrderID,
		Folio:       req.Folio,
		Status:      domain.RemissionOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.remissionRepo.SaveRemission(ctx, remission); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: folio %s", apperrors.ErrDuplicate, req.Folio)
		}
		s.LogError(ctx, err, "Failed to save remission", slog.String("folio", req.Folio))
		return nil, fmt.Errorf("failed to create remission: %w", err)
	}

	return &remission, nil
}

func (s *remissionService) GetRemissionByID(ctx context.Context, remissionID string) (*domain.Remission, error) {
	return s.remissionRepo.FindRemissionByID(ctx, remissionID)
}

func (s *remissionService) ListRemissionsByOrder(ctx context.Context, orderID string) ([]domain.Remission, error) {
	remissions, err := s.remissionRepo.ListRemissionsByOrder(ctx, orderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list remissions", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to list remissions: %w", err)
	}
	return remissions, nil
}

func (s *remissionService) DeleteRemission(ctx context.Context, remissionID string) error {
	return s.remissionRepo.DeleteRemission(ctx, remissionID)
}

// AddSale records a sale under a remission. The remission row is locked for
// the duration of the insert so a concurrent close cannot commit against a
// stale aggregate, and closed remissions reject new sales.
func (s *remissionService) AddSale(ctx context.Context, remissionID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if req.Subtotal.IsNegative() || req.Tax.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeAmount)
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	sale := domain.Sale{
		SaleID:      uuid.NewString(),
		RemissionID: remissionID,
		Subtotal:    req.Subtotal.Round(2),
		Tax:         req.Tax.Round(2),
		CreatedAt:   createdAt,
	}

	err := s.withLockedOpenRemission(ctx, remissionID, func(tx pgx.Tx) error {
		return s.remissionRepo.SaveSaleInTx(ctx, tx, sale)
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (s *remissionService) ListSales(ctx context.Context, remissionID string) ([]domain.Sale, error) {
	if _, err := s.remissionRepo.FindRemissionByID(ctx, remissionID); err != nil {
		return nil, err
	}
	return s.remissionRepo.FindSalesByRemissionID(ctx, remissionID)
}

// AddCredit assigns a credit to a remission, under the same locking
// discipline as AddSale.
func (s *remissionService) AddCredit(ctx context.Context, remissionID string, req dto.CreateCreditRequest) (*domain.CreditAssignment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNonPositiveAmount)
	}

	credit := domain.CreditAssignment{
		CreditID:    uuid.NewString(),
		RemissionID: remissionID,
		Amount:      req.Amount.Round(2),
		Reason:      req.Reason,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.withLockedOpenRemission(ctx, remissionID, func(tx pgx.Tx) error {
		return s.remissionRepo.SaveCreditInTx(ctx, tx, credit)
	})
	if err != nil {
		return nil, err
	}

	return &credit, nil
}

func (s *remissionService) ListCredits(ctx context.Context, remissionID string) ([]domain.CreditAssignment, error) {
	if _, err := s.remissionRepo.FindRemissionByID(ctx, remissionID); err != nil {
		return nil, err
	}
	return s.remissionRepo.FindCreditsByRemissionID(ctx, remissionID)
}

// withLockedOpenRemission runs fn inside a transaction holding a row-level
// lock on the remission. Closed remissions are rejected, which together with
// the lock keeps child inserts serialised against an in-flight close.
func (s *remissionService) withLockedOpenRemission(ctx context.Context, remissionID string, fn func(tx pgx.Tx) error) error {
	tx, err := s.remissionRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.remissionRepo.Rollback(ctx, tx)

	remission, err := s.remissionRepo.FindRemissionByIDForUpdate(ctx, tx, remissionID)
	if err != nil {
		return err
	}
	if remission.IsClosed() {
		return fmt.Errorf("%w: remission %s", ErrRemissionClosed, remission.Folio)
	}

	if err := fn(tx); err != nil {
		return err
	}

	return s.remissionRepo.Commit(ctx, tx)
}

// CloseRemission transitions a remission from open to closed. The rule
// evaluation and the status write happen inside a single database
// transaction, with the remission row locked, so the aggregate the rules saw
// is the aggregate the close commits against.
//
// Closing rules:
//  1. The remission must have at least one sale.
//  2. The total of assigned credits must not exceed the total of sales.
func (s *remissionService) CloseRemission(ctx context.Context, remissionID string) error {
	tx, err := s.remissionRepo.Begin(ctx)
	if err != nil {
		return err
	}
	// Rollback is a no-op once the transaction commits.
	defer s.remissionRepo.Rollback(ctx, tx)

	remission, err := s.remissionRepo.FindRemissionByIDForUpdate(ctx, tx, remissionID)
	if err != nil {
		return err
	}

	if remission.IsClosed() {
		return fmt.Errorf("%w: remission %s", ErrAlreadyClosed, remission.Folio)
	}

	sales, err := s.remissionRepo.FindSalesByRemissionIDInTx(ctx, tx, remissionID)
	if err != nil {
		return fmt.Errorf("failed to load sales for close: %w", err)
	}
	credits, err := s.remissionRepo.FindCreditsByRemissionIDInTx(ctx, tx, remissionID)
	if err != nil {
		return fmt.Errorf("failed to load credits for close: %w", err)
	}

	summary := domain.Summarize(sales, credits)

	if summary.SalesCount == 0 {
		return ErrEmptySaleSet
	}

	if summary.TotalCredits.GreaterThan(summary.TotalSales) {
		return fmt.Errorf("%w: total credits (%s) exceed total sales (%s)",
			ErrCreditsExceedSales, summary.TotalCredits.StringFixed(2), summary.TotalSales.StringFixed(2))
	}

	if err := s.remissionRepo.UpdateRemissionStatusInTx(ctx, tx, remissionID, domain.RemissionClosed); err != nil {
		return fmt.Errorf("failed to update remission status: %w", err)
	}

	if err := s.remissionRepo.Commit(ctx, tx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Remission closed",
		slog.String("remission_id", remissionID),
		slog.String("total_sales", summary.TotalSales.StringFixed(2)),
		slog.String("total_credits", summary.TotalCredits.StringFixed(2)),
		slog.Int("sales_count", summary.SalesCount))
	return nil
}

// SummarizeRemission returns the aggregate totals for a remission. Read-only;
// valid for open and closed remissions alike.
func (s *remissionService) SummarizeRemission(ctx context.Context, remissionID string) (*domain.RemissionSummary, error) {
	if _, err := s.remissionRepo.FindRemissionByID(ctx, remissionID); err != nil {
		return nil, err
	}

	sales, err := s.remissionRepo.FindSalesByRemissionID(ctx, remissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for summary: %w", err)
	}
	credits, err := s.remissionRepo.FindCreditsByRemissionID(ctx, remissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credits for summary: %w", err)
	}

	summary := domain.Summarize(sales, credits)
	return &summary, nil
}
