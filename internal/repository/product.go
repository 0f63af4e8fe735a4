package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `product_id, name, description, price, category, image_url, is_available`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List returns every available product.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	items, err := collectAll[model.Product](r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_available = TRUE`))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return items, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	item, err := collectOne[model.Product](r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE product_id = $1 AND is_available = TRUE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return item, nil
}

// ListByCategory matches the category case-insensitively.
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	items, err := collectAll[model.Product](r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE category ILIKE $1 AND is_available = TRUE`, category))
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return items, nil
}

// Categories returns the distinct non-null categories in ascending order.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT category
		FROM products
		WHERE category IS NOT NULL
		ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Options returns the available options of a product.
func (r *ProductRepository) Options(ctx context.Context, productID int64) ([]model.ProductOption, error) {
	items, err := collectAll[model.ProductOption](r.pool.Query(ctx, `
		SELECT option_id, option_type, option_name, additional_price
		FROM product_options
		WHERE product_id = $1 AND is_available = TRUE`, productID))
	if err != nil {
		return nil, fmt.Errorf("failed to list options of product %d: %w", productID, err)
	}
	return items, nil
}

func (r *ProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product name: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	item, err := collectOne[model.Product](r.pool.Query(ctx, `
		INSERT INTO products (name, description, price, category, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return item, nil
}

// Update replaces every mutable column of the product with p.ID.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	item, err := collectOne[model.Product](r.pool.Query(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, image_url = $6, is_available = $7
		WHERE product_id = $1
		RETURNING `+productColumns,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", p.ID, err)
	}
	return item, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM products WHERE product_id = $1 RETURNING product_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return deleted, nil
}
