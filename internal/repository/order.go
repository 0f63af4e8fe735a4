package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `order_id, user_id, address_id, total_amount, status, order_date, payment_method, is_available`

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	items, err := collectAll[model.Order](r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE is_available = TRUE`))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return items, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	item, err := collectOne[model.Order](r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_id = $1 AND is_available = TRUE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return item, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	items, err := collectAll[model.Order](r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1 AND is_available = TRUE`, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders of user %d: %w", userID, err)
	}
	return items, nil
}

// Create inserts a new available order dated by the database clock.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	item, err := collectOne[model.Order](r.pool.Query(ctx, `
		INSERT INTO orders (user_id, address_id, total_amount, status, payment_method, order_date, is_available)
		VALUES ($1, $2, $3, $4, $5, NOW(), TRUE)
		RETURNING `+orderColumns,
		o.UserID, o.AddressID, o.TotalAmount, o.Status, o.PaymentMethod))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return item, nil
}

// Update replaces the mutable columns. order_date is kept.
func (r *OrderRepository) Update(ctx context.Context, o *model.Order) (*model.Order, error) {
	item, err := collectOne[model.Order](r.pool.Query(ctx, `
		UPDATE orders
		SET user_id = $2, address_id = $3, total_amount = $4, status = $5,
		    payment_method = $6, is_available = $7
		WHERE order_id = $1
		RETURNING `+orderColumns,
		o.ID, o.UserID, o.AddressID, o.TotalAmount, o.Status, o.PaymentMethod, o.IsAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", o.ID, err)
	}
	return item, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM orders WHERE order_id = $1 RETURNING order_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return deleted, nil
}
