package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/apperrors"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
	"github.com/davidmr-dev/remission_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRemissionRepository struct {
	BaseRepository
}

// newPgxRemissionRepository creates a new repository for remission, sale and
// credit assignment data.
func newPgxRemissionRepository(pool *pgxpool.Pool) portsrepo.RemissionRepositoryWithTx {
	return &PgxRemissionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRemissionRepository implements portsrepo.RemissionRepositoryWithTx
var _ portsrepo.RemissionRepositoryWithTx = (*PgxRemissionRepository)(nil)

const remissionColumns = `remission_id, order_id, folio, status, created_at`

func scanRemission(row pgx.Row) (*domain.Remission, error) {
	var m models.Remission
	err := row.Scan(
		&m.RemissionID,
		&m.OrderID,
		&m.Folio,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan remission: %w", err)
	}
	remission := mapping.ToDomainRemission(m)
	return &remission, nil
}

func (r *PgxRemissionRepository) SaveRemission(ctx context.Context, remission domain.Remission) error {
	modelRemission := mapping.ToModelRemission(remission)
	query := `
		INSERT INTO remissions (remission_id, order_id, folio, status, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRemission.RemissionID,
		modelRemission.OrderID,
		modelRemission.Folio,
		modelRemission.Status,
		modelRemission.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save remission: %w", err)
	}
	return nil
}

func (r *PgxRemissionRepository) FindRemissionByID(ctx context.Context, remissionID string) (*domain.Remission, error) {
	query := `SELECT ` + remissionColumns + ` FROM remissions WHERE remission_id = $1;`
	return scanRemission(r.Pool.QueryRow(ctx, query, remissionID))
}

// FindRemissionByIDForUpdate locks the remission row inside tx. Concurrent
// closes and child inserts on the same remission queue up behind the lock.
func (r *PgxRemissionRepository) FindRemissionByIDForUpdate(ctx context.Context, tx pgx.Tx, remissionID string) (*domain.Remission, error) {
	query := `SELECT ` + remissionColumns + ` FROM remissions WHERE remission_id = $1 FOR UPDATE;`
	return scanRemission(tx.QueryRow(ctx, query, remissionID))
}

func (r *PgxRemissionRepository) ListRemissionsByOrder(ctx context.Context, orderID string) ([]domain.Remission, error) {
	query := `SELECT ` + remissionColumns + ` FROM remissions WHERE order_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list remissions for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var modelRemissions []models.Remission
	for rows.Next() {
		var m models.Remission
		if err := rows.Scan(&m.RemissionID, &m.OrderID, &m.Folio, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan remission row: %w", err)
		}
		modelRemissions = append(modelRemissions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating remission rows: %w", err)
	}

	return mapping.ToDomainRemissionSlice(modelRemissions), nil
}

// UpdateRemissionStatusInTx writes the remission status inside the caller's
// transaction. The service decides the transition; this only persists it.
func (r *PgxRemissionRepository) UpdateRemissionStatusInTx(ctx context.Context, tx pgx.Tx, remissionID string, status domain.RemissionStatus) error {
	tag, err := tx.Exec(ctx,
		`UPDATE remissions SET status = $2 WHERE remission_id = $1;`,
		remissionID, models.RemissionStatus(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update status of remission %s: %w", remissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRemissionRepository) DeleteRemission(ctx context.Context, remissionID string) error {
	// Sales and credit assignments cascade via foreign keys.
	tag, err := r.Pool.Exec(ctx, `DELETE FROM remissions WHERE remission_id = $1;`, remissionID)
	if err != nil {
		return fmt.Errorf("failed to delete remission %s: %w", remissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const saleColumns = `sale_id, remission_id, subtotal, tax, created_at`

func (r *PgxRemissionRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	modelSale := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (sale_id, remission_id, subtotal, tax, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query,
		modelSale.SaleID,
		modelSale.RemissionID,
		modelSale.Subtotal,
		modelSale.Tax,
		modelSale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}
	return nil
}

func (r *PgxRemissionRepository) querySales(ctx context.Context, q querier, remissionID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE remission_id = $1 ORDER BY created_at;`
	rows, err := q.Query(ctx, query, remissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for remission %s: %w", remissionID, err)
	}
	defer rows.Close()

	var modelSales []models.Sale
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.RemissionID, &m.Subtotal, &m.Tax, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		modelSales = append(modelSales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	return mapping.ToDomainSaleSlice(modelSales), nil
}

func (r *PgxRemissionRepository) FindSalesByRemissionID(ctx context.Context, remissionID string) ([]domain.Sale, error) {
	return r.querySales(ctx, r.Pool, remissionID)
}

func (r *PgxRemissionRepository) FindSalesByRemissionIDInTx(ctx context.Context, tx pgx.Tx, remissionID string) ([]domain.Sale, error) {
	return r.querySales(ctx, tx, remissionID)
}

// UpdateSaleCreatedAt backdates a sale's creation timestamp. Seed tooling only.
func (r *PgxRemissionRepository) UpdateSaleCreatedAt(ctx context.Context, saleID string, createdAt time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE sales SET created_at = $2 WHERE sale_id = $1;`,
		saleID, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update created_at of sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const creditColumns = `credit_id, remission_id, amount, reason, created_at`

func (r *PgxRemissionRepository) SaveCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditAssignment) error {
	modelCredit := mapping.ToModelCreditAssignment(credit)
	query := `
		INSERT INTO credit_assignments (credit_id, remission_id, amount, reason, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query,
		modelCredit.CreditID,
		modelCredit.RemissionID,
		modelCredit.Amount,
		modelCredit.Reason,
		modelCredit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save credit assignment: %w", err)
	}
	return nil
}

func (r *PgxRemissionRepository) queryCredits(ctx context.Context, q querier, remissionID string) ([]domain.CreditAssignment, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_assignments WHERE remission_id = $1 ORDER BY created_at;`
	rows, err := q.Query(ctx, query, remissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits for remission %s: %w", remissionID, err)
	}
	defer rows.Close()

	var modelCredits []models.CreditAssignment
	for rows.Next() {
		var m models.CreditAssignment
		if err := rows.Scan(&m.CreditID, &m.RemissionID, &m.Amount, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credit row: %w", err)
		}
		modelCredits = append(modelCredits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit rows: %w", err)
	}

	return mapping.ToDomainCreditAssignmentSlice(modelCredits), nil
}

func (r *PgxRemissionRepository) FindCreditsByRemissionID(ctx context.Context, remissionID string) ([]domain.CreditAssignment, error) {
	return r.queryCredits(ctx, r.Pool, remissionID)
}

func (r *PgxRemissionRepository) FindCreditsByRemissionIDInTx(ctx context.Context, tx pgx.Tx, remissionID string) ([]domain.CreditAssignment, error) {
	return r.queryCredits(ctx, tx, remissionID)
}

// querier abstracts over the pool and an open transaction for reads.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
