package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const comboSetColumns = `combo_set_id, name, description, base_price, image_url, is_active`

type ComboSetRepository struct {
	pool *pgxpool.Pool
}

func NewComboSetRepository(pool *pgxpool.Pool) *ComboSetRepository {
	return &ComboSetRepository{pool: pool}
}

// List returns every active combo set.
func (r *ComboSetRepository) List(ctx context.Context) ([]model.ComboSet, error) {
	items, err := collectAll[model.ComboSet](r.pool.Query(ctx, `
		SELECT `+comboSetColumns+`
		FROM combo_sets
		WHERE is_active = TRUE`))
	if err != nil {
		return nil, fmt.Errorf("failed to list combo sets: %w", err)
	}
	return items, nil
}

func (r *ComboSetRepository) GetByID(ctx context.Context, id int64) (*model.ComboSet, error) {
	item, err := collectOne[model.ComboSet](r.pool.Query(ctx, `
		SELECT `+comboSetColumns+`
		FROM combo_sets
		WHERE combo_set_id = $1 AND is_active = TRUE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get combo set %d: %w", id, err)
	}
	return item, nil
}

func (r *ComboSetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM combo_sets WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check combo set name: %w", err)
	}
	return exists, nil
}

func (r *ComboSetRepository) Create(ctx context.Context, cs *model.ComboSet) (*model.ComboSet, error) {
	item, err := collectOne[model.ComboSet](r.pool.Query(ctx, `
		INSERT INTO combo_sets (name, description, base_price, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+comboSetColumns,
		cs.Name, cs.Description, cs.BasePrice, cs.ImageURL, cs.IsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to create combo set: %w", err)
	}
	return item, nil
}

func (r *ComboSetRepository) Update(ctx context.Context, cs *model.ComboSet) (*model.ComboSet, error) {
	item, err := collectOne[model.ComboSet](r.pool.Query(ctx, `
		UPDATE combo_sets
		SET name = $2, description = $3, base_price = $4, image_url = $5, is_active = $6
		WHERE combo_set_id = $1
		RETURNING `+comboSetColumns,
		cs.ID, cs.Name, cs.Description, cs.BasePrice, cs.ImageURL, cs.IsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to update combo set %d: %w", cs.ID, err)
	}
	return item, nil
}

func (r *ComboSetRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM combo_sets WHERE combo_set_id = $1 RETURNING combo_set_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete combo set %d: %w", id, err)
	}
	return deleted, nil
}
