package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const promotionEntity = "Promotion"

type PromotionService struct {
	store PromotionStore
}

func NewPromotionService(store PromotionStore) *PromotionService {
	return &PromotionService{store: store}
}

// List returns the promotions valid right now.
func (s *PromotionService) List(ctx context.Context) ([]model.Promotion, error) {
	promotions, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return promotions, nil
}

// Get returns the promotion only while it is valid; an expired or not yet
// started promotion is reported as not found.
func (s *PromotionService) Get(ctx context.Context, id int64) (*model.Promotion, error) {
	promotion, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, promotionEntity)
	}
	return promotion, nil
}

func (s *PromotionService) Create(ctx context.Context, p *model.Promotion) (*model.Promotion, error) {
	exists, err := s.store.ExistsByCouponCode(ctx, p.CouponCode)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().Str("coupon_code", p.CouponCode).Msg("coupon code already exists")
		return nil, errs.Conflict("A promotion with this coupon code")
	}

	created, err := s.store.Create(ctx, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *PromotionService) Update(ctx context.Context, p *model.Promotion) (*model.Promotion, error) {
	updated, err := s.store.Update(ctx, p)
	if err != nil {
		return nil, storeError(err, promotionEntity)
	}
	return updated, nil
}

func (s *PromotionService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, promotionEntity)
	}
	return deleted, nil
}
