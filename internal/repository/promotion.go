package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const promotionColumns = `promotion_id, coupon_code, description, discount_type, discount_value, min_purchase, start_date, expiry_date`

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

// List returns the promotions whose validity window contains the current time.
func (r *PromotionRepository) List(ctx context.Context) ([]model.Promotion, error) {
	items, err := collectAll[model.Promotion](r.pool.Query(ctx, `
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE start_date <= NOW() AND expiry_date >= NOW()`))
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return items, nil
}

func (r *PromotionRepository) GetByID(ctx context.Context, id int64) (*model.Promotion, error) {
	item, err := collectOne[model.Promotion](r.pool.Query(ctx, `
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE promotion_id = $1 AND start_date <= NOW() AND expiry_date >= NOW()`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get promotion %d: %w", id, err)
	}
	return item, nil
}

func (r *PromotionRepository) ExistsByCouponCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM promotions WHERE coupon_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check coupon code: %w", err)
	}
	return exists, nil
}

func (r *PromotionRepository) Create(ctx context.Context, p *model.Promotion) (*model.Promotion, error) {
	item, err := collectOne[model.Promotion](r.pool.Query(ctx, `
		INSERT INTO promotions (coupon_code, description, discount_type, discount_value, min_purchase, start_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+promotionColumns,
		p.CouponCode, p.Description, p.DiscountType, p.DiscountValue, p.MinPurchase, p.StartDate, p.ExpiryDate))
	if err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}
	return item, nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *model.Promotion) (*model.Promotion, error) {
	item, err := collectOne[model.Promotion](r.pool.Query(ctx, `
		UPDATE promotions
		SET coupon_code = $2, description = $3, discount_type = $4, discount_value = $5,
		    min_purchase = $6, start_date = $7, expiry_date = $8
		WHERE promotion_id = $1
		RETURNING `+promotionColumns,
		p.ID, p.CouponCode, p.Description, p.DiscountType, p.DiscountValue, p.MinPurchase, p.StartDate, p.ExpiryDate))
	if err != nil {
		return nil, fmt.Errorf("failed to update promotion %d: %w", p.ID, err)
	}
	return item, nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM promotions WHERE promotion_id = $1 RETURNING promotion_id`, id).Scan(&deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to delete promotion %d: %w", id, err)
	}
	return deleted, nil
}
