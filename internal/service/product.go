package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const productEntity = "Product"

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, productEntity)
	}
	return product, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.store.ListByCategory(ctx, category)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return products, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return categories, nil
}

func (s *ProductService) Options(ctx context.Context, productID int64) ([]model.ProductOption, error) {
	options, err := s.store.Options(ctx, productID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return options, nil
}

// Create rejects a product whose name is already taken.
func (s *ProductService) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	exists, err := s.store.ExistsByName(ctx, p.Name)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().Str("name", p.Name).Msg("product name already exists")
		return nil, errs.Conflict("A product with this name")
	}

	created, err := s.store.Create(ctx, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	updated, err := s.store.Update(ctx, p)
	if err != nil {
		return nil, storeError(err, productEntity)
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, productEntity)
	}
	return deleted, nil
}
