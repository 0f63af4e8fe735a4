package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const (
	comboSetEntity     = "Combo set"
	comboSetItemEntity = "Combo set item"
)

type ComboSetService struct {
	store ComboSetStore
}

func NewComboSetService(store ComboSetStore) *ComboSetService {
	return &ComboSetService{store: store}
}

func (s *ComboSetService) List(ctx context.Context) ([]model.ComboSet, error) {
	sets, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return sets, nil
}

func (s *ComboSetService) Get(ctx context.Context, id int64) (*model.ComboSet, error) {
	set, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, comboSetEntity)
	}
	return set, nil
}

func (s *ComboSetService) Create(ctx context.Context, cs *model.ComboSet) (*model.ComboSet, error) {
	exists, err := s.store.ExistsByName(ctx, cs.Name)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().Str("name", cs.Name).Msg("combo set name already exists")
		return nil, errs.Conflict("A combo set with this name")
	}

	created, err := s.store.Create(ctx, cs)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *ComboSetService) Update(ctx context.Context, cs *model.ComboSet) (*model.ComboSet, error) {
	updated, err := s.store.Update(ctx, cs)
	if err != nil {
		return nil, storeError(err, comboSetEntity)
	}
	return updated, nil
}

func (s *ComboSetService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, comboSetEntity)
	}
	return deleted, nil
}

type ComboSetItemService struct {
	store ComboSetItemStore
}

func NewComboSetItemService(store ComboSetItemStore) *ComboSetItemService {
	return &ComboSetItemService{store: store}
}

func (s *ComboSetItemService) List(ctx context.Context) ([]model.ComboSetItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

// ListByComboSet is the one parent-scoped list that reports an empty
// result as 404.
func (s *ComboSetItemService) ListByComboSet(ctx context.Context, comboSetID int64) ([]model.ComboSetItem, error) {
	items, err := s.store.ListByComboSet(ctx, comboSetID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(items) == 0 {
		return nil, errs.NewNotFoundError("No combo set items found for this combo set", true, nil)
	}
	return items, nil
}

// Create rejects an item id that is already in use.
func (s *ComboSetItemService) Create(ctx context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error) {
	exists, err := s.store.Exists(ctx, item.ID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().Int64("item_id", item.ID).Msg("combo set item already exists")
		return nil, errs.Conflict("A combo set item with this id")
	}

	created, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *ComboSetItemService) Update(ctx context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error) {
	updated, err := s.store.Update(ctx, item)
	if err != nil {
		return nil, storeError(err, comboSetItemEntity)
	}
	return updated, nil
}

func (s *ComboSetItemService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, comboSetItemEntity)
	}
	return deleted, nil
}
