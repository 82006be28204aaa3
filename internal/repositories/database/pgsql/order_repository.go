package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidmr-dev/remission_tracker_app/internal/apperrors"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portsrepo "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/repositories"
	"github.com/davidmr-dev/remission_tracker_app/internal/models"
	"github.com/davidmr-dev/remission_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

type PgxOrderRepository struct {
	db *pgxpool.Pool
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{db: db}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	modelOrder := mapping.ToModelOrder(order)
	query := `
		INSERT INTO orders (order_id, customer_id, folio, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.CustomerID,
		modelOrder.Folio,
		modelOrder.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
		SELECT order_id, customer_id, folio, created_at
		FROM orders
		WHERE order_id = $1;
	`
	var modelOrder models.Order
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&modelOrder.OrderID,
		&modelOrder.CustomerID,
		&modelOrder.Folio,
		&modelOrder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	order := mapping.ToDomainOrder(modelOrder)
	return &order, nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT order_id, customer_id, folio, created_at
		FROM orders
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var modelOrders []models.Order
	for rows.Next() {
		var m models.Order
		if err := rows.Scan(&m.OrderID, &m.CustomerID, &m.Folio, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		modelOrders = append(modelOrders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	return mapping.ToDomainOrderSlice(modelOrders), nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	// Remissions, sales and credits cascade via foreign keys.
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
