package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const addressEntity = "Address"

type AddressService struct {
	store AddressStore
}

func NewAddressService(store AddressStore) *AddressService {
	return &AddressService{store: store}
}

func (s *AddressService) List(ctx context.Context) ([]model.Address, error) {
	addresses, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return addresses, nil
}

func (s *AddressService) Get(ctx context.Context, id int64) (*model.Address, error) {
	address, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, addressEntity)
	}
	return address, nil
}

func (s *AddressService) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	addresses, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return addresses, nil
}

// Create rejects an address the user already has at the same location.
// Setting IsDefault moves the user's default to the new address.
func (s *AddressService) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	exists, err := s.store.Exists(ctx, a)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().Int64("user_id", a.UserID).Msg("address already exists")
		return nil, errs.Conflict("This address")
	}

	created, err := s.store.Create(ctx, a)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *AddressService) Update(ctx context.Context, a *model.Address) (*model.Address, error) {
	updated, err := s.store.Update(ctx, a)
	if err != nil {
		return nil, storeError(err, addressEntity)
	}
	return updated, nil
}

func (s *AddressService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, addressEntity)
	}
	return deleted, nil
}
