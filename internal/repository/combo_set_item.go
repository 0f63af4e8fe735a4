package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const comboSetItemColumns = `item_id, combo_set_id, category_name, quantity`

type ComboSetItemRepository struct {
	pool *pgxpool.Pool
}

func NewComboSetItemRepository(pool *pgxpool.Pool) *ComboSetItemRepository {
	return &ComboSetItemRepository{pool: pool}
}

// List returns every item with a positive quantity.
func (r *ComboSetItemRepository) List(ctx context.Context) ([]model.ComboSetItem, error) {
	items, err := collectAll[model.ComboSetItem](r.pool.Query(ctx, `
		SELECT `+comboSetItemColumns+`
		FROM combo_set_items
		WHERE quantity > 0`))
	if err != nil {
		return nil, fmt.Errorf("failed to list combo set items: %w", err)
	}
	return items, nil
}

func (r *ComboSetItemRepository) ListByComboSet(ctx context.Context, comboSetID int64) ([]model.ComboSetItem, error) {
	items, err := collectAll[model.ComboSetItem](r.pool.Query(ctx, `
		SELECT `+comboSetItemColumns+`
		FROM combo_set_items
		WHERE combo_set_id = $1 AND quantity > 0`, comboSetID))
	if err != nil {
		return nil, fmt.Errorf("failed to list items of combo set %d: %w", comboSetID, err)
	}
	return items, nil
}

func (r *ComboSetItemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM combo_set_items WHERE item_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check combo set item %d: %w", id, err)
	}
	return exists, nil
}

// Create inserts the item under the id chosen by the client.
func (r *ComboSetItemRepository) Create(ctx context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error) {
	created, err := collectOne[model.ComboSetItem](r.pool.Query(ctx, `
		INSERT INTO combo_set_items (item_id, combo_set_id, category_name, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING `+comboSetItemColumns,
		item.ID, item.ComboSetID, item.CategoryName, item.Quantity))
	if err != nil {
		return nil, fmt.Errorf("failed to create combo set item: %w", err)
	}
	return created, nil
}

func (r *ComboSetItemRepository) Update(ctx context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error) {
	updated, err := collectOne[model.ComboSetItem](r.pool.Query(ctx, `
		UPDATE combo_set_items
		SET combo_set_id = $2, category_name = $3, quantity = $4
		WHERE item_id = $1
		RETURNING `+comboSetItemColumns,
		item.ID, item.ComboSetID, item.CategoryName, item.Quantity))
	if err != nil {
		return nil, fmt.Errorf("failed to update combo set item %d: %w", item.ID, err)
	}
	return updated, nil
}

func (r *ComboSetItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM combo_set_items WHERE item_id = $1 RETURNING item_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete combo set item %d: %w", id, err)
	}
	return deleted, nil
}
