package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const toppingColumns = `topping_id, name, price, category, is_available`

type ToppingRepository struct {
	pool *pgxpool.Pool
}

func NewToppingRepository(pool *pgxpool.Pool) *ToppingRepository {
	return &ToppingRepository{pool: pool}
}

func (r *ToppingRepository) List(ctx context.Context) ([]model.Topping, error) {
	items, err := collectAll[model.Topping](r.pool.Query(ctx, `
		SELECT `+toppingColumns+`
		FROM toppings
		WHERE is_available = TRUE`))
	if err != nil {
		return nil, fmt.Errorf("failed to list toppings: %w", err)
	}
	return items, nil
}

func (r *ToppingRepository) GetByID(ctx context.Context, id int64) (*model.Topping, error) {
	item, err := collectOne[model.Topping](r.pool.Query(ctx, `
		SELECT `+toppingColumns+`
		FROM toppings
		WHERE topping_id = $1 AND is_available = TRUE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get topping %d: %w", id, err)
	}
	return item, nil
}

// ListByCategory matches the category exactly.
func (r *ToppingRepository) ListByCategory(ctx context.Context, category string) ([]model.Topping, error) {
	items, err := collectAll[model.Topping](r.pool.Query(ctx, `
		SELECT `+toppingColumns+`
		FROM toppings
		WHERE category = $1 AND is_available = TRUE`, category))
	if err != nil {
		return nil, fmt.Errorf("failed to list toppings by category: %w", err)
	}
	return items, nil
}

func (r *ToppingRepository) Exists(ctx context.Context, name, category string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM toppings WHERE name = $1 AND category = $2)`,
		name, category).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check topping: %w", err)
	}
	return exists, nil
}

func (r *ToppingRepository) Create(ctx context.Context, t *model.Topping) (*model.Topping, error) {
	item, err := collectOne[model.Topping](r.pool.Query(ctx, `
		INSERT INTO toppings (name, price, category, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING `+toppingColumns,
		t.Name, t.Price, t.Category, t.IsAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to create topping: %w", err)
	}
	return item, nil
}

func (r *ToppingRepository) Update(ctx context.Context, t *model.Topping) (*model.Topping, error) {
	item, err := collectOne[model.Topping](r.pool.Query(ctx, `
		UPDATE toppings
		SET name = $2, price = $3, category = $4, is_available = $5
		WHERE topping_id = $1
		RETURNING `+toppingColumns,
		t.ID, t.Name, t.Price, t.Category, t.IsAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to update topping %d: %w", t.ID, err)
	}
	return item, nil
}

func (r *ToppingRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM toppings WHERE topping_id = $1 RETURNING topping_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete topping %d: %w", id, err)
	}
	return deleted, nil
}
