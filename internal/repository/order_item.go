package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderItemColumns = `order_item_id, order_id, product_id, quantity, price_per_unit, customizations`

// visibleOrderItem restricts order_items to those of available orders.
const visibleOrderItem = `order_id IN (SELECT order_id FROM orders WHERE is_available = TRUE)`

type OrderItemRepository struct {
	pool *pgxpool.Pool
}

func NewOrderItemRepository(pool *pgxpool.Pool) *OrderItemRepository {
	return &OrderItemRepository{pool: pool}
}

func (r *OrderItemRepository) List(ctx context.Context) ([]model.OrderItem, error) {
	items, err := collectAll[model.OrderItem](r.pool.Query(ctx, `
		SELECT `+orderItemColumns+`
		FROM order_items
		WHERE `+visibleOrderItem))
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return items, nil
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	item, err := collectOne[model.OrderItem](r.pool.Query(ctx, `
		SELECT `+orderItemColumns+`
		FROM order_items
		WHERE order_item_id = $1 AND `+visibleOrderItem, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get order item %d: %w", id, err)
	}
	return item, nil
}

func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items, err := collectAll[model.OrderItem](r.pool.Query(ctx, `
		SELECT `+orderItemColumns+`
		FROM order_items
		WHERE order_id = $1 AND `+visibleOrderItem, orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to list items of order %d: %w", orderID, err)
	}
	return items, nil
}

// Exists reports whether the order already holds the product with the same
// customizations. NULL customizations match NULL.
func (r *OrderItemRepository) Exists(ctx context.Context, orderID, productID int64, customizations *string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM order_items
			WHERE order_id = $1 AND product_id = $2 AND customizations IS NOT DISTINCT FROM $3
		)`, orderID, productID, customizations).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order item: %w", err)
	}
	return exists, nil
}

func (r *OrderItemRepository) Create(ctx context.Context, oi *model.OrderItem) (*model.OrderItem, error) {
	item, err := collectOne[model.OrderItem](r.pool.Query(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, price_per_unit, customizations)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderItemColumns,
		oi.OrderID, oi.ProductID, oi.Quantity, oi.PricePerUnit, oi.Customizations))
	if err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}
	return item, nil
}

func (r *OrderItemRepository) Update(ctx context.Context, oi *model.OrderItem) (*model.OrderItem, error) {
	item, err := collectOne[model.OrderItem](r.pool.Query(ctx, `
		UPDATE order_items
		SET order_id = $2, product_id = $3, quantity = $4, price_per_unit = $5, customizations = $6
		WHERE order_item_id = $1
		RETURNING `+orderItemColumns,
		oi.ID, oi.OrderID, oi.ProductID, oi.Quantity, oi.PricePerUnit, oi.Customizations))
	if err != nil {
		return nil, fmt.Errorf("failed to update order item %d: %w", oi.ID, err)
	}
	return item, nil
}

func (r *OrderItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM order_items WHERE order_item_id = $1 RETURNING order_item_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order item %d: %w", id, err)
	}
	return deleted, nil
}
