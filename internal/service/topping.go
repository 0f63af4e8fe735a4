package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const toppingEntity = "Topping"

type ToppingService struct {
	store ToppingStore
}

func NewToppingService(store ToppingStore) *ToppingService {
	return &ToppingService{store: store}
}

func (s *ToppingService) List(ctx context.Context) ([]model.Topping, error) {
	toppings, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return toppings, nil
}

func (s *ToppingService) Get(ctx context.Context, id int64) (*model.Topping, error) {
	topping, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, toppingEntity)
	}
	return topping, nil
}

func (s *ToppingService) ListByCategory(ctx context.Context, category string) ([]model.Topping, error) {
	toppings, err := s.store.ListByCategory(ctx, category)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return toppings, nil
}

// Create rejects a (name, category) pair that already exists. New toppings
// are always available.
func (s *ToppingService) Create(ctx context.Context, t *model.Topping) (*model.Topping, error) {
	exists, err := s.store.Exists(ctx, t.Name, t.Category)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().
			Str("name", t.Name).
			Str("category", t.Category).
			Msg("topping already exists")
		return nil, errs.Conflict("A topping with this name in this category")
	}

	t.IsAvailable = true
	created, err := s.store.Create(ctx, t)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *ToppingService) Update(ctx context.Context, t *model.Topping) (*model.Topping, error) {
	updated, err := s.store.Update(ctx, t)
	if err != nil {
		return nil, storeError(err, toppingEntity)
	}
	return updated, nil
}

func (s *ToppingService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, toppingEntity)
	}
	return deleted, nil
}
