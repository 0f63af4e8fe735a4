package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const (
	orderEntity     = "Order"
	orderItemEntity = "Order item"
)

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, orderEntity)
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return orders, nil
}

// Create places an order. The store stamps order_date and marks it available.
func (s *OrderService) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	created, err := s.store.Create(ctx, o)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, o *model.Order) (*model.Order, error) {
	updated, err := s.store.Update(ctx, o)
	if err != nil {
		return nil, storeError(err, orderEntity)
	}
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, orderEntity)
	}
	return deleted, nil
}

type OrderItemService struct {
	store OrderItemStore
}

func NewOrderItemService(store OrderItemStore) *OrderItemService {
	return &OrderItemService{store: store}
}

func (s *OrderItemService) List(ctx context.Context) ([]model.OrderItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

func (s *OrderItemService) Get(ctx context.Context, id int64) (*model.OrderItem, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, orderItemEntity)
	}
	return item, nil
}

// ListByOrder returns an empty list, not 404, when the order has no
// visible items.
func (s *OrderItemService) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items, err := s.store.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

// Create rejects a second line for the same product with the same
// customizations on one order.
func (s *OrderItemService) Create(ctx context.Context, oi *model.OrderItem) (*model.OrderItem, error) {
	exists, err := s.store.Exists(ctx, oi.OrderID, oi.ProductID, oi.Customizations)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		zerolog.Ctx(ctx).Warn().
			Int64("order_id", oi.OrderID).
			Int64("product_id", oi.ProductID).
			Msg("order item already exists")
		return nil, errs.Conflict("This item in the order")
	}

	created, err := s.store.Create(ctx, oi)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (s *OrderItemService) Update(ctx context.Context, oi *model.OrderItem) (*model.OrderItem, error) {
	updated, err := s.store.Update(ctx, oi)
	if err != nil {
		return nil, storeError(err, orderItemEntity)
	}
	return updated, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, deleteError(err, orderItemEntity)
	}
	return deleted, nil
}
