package repotest

import (
	"context"
	"time"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type AddressStore struct{ db *DB }

func (s *AddressStore) List(_ context.Context) ([]model.Address, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.addresses, func(model.Address) bool { return true }), nil
}

func (s *AddressStore) GetByID(_ context.Context, id int64) (*model.Address, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.addresses, func(a model.Address) bool { return a.ID == id })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.addresses[i]), nil
}

func (s *AddressStore) ListByUser(_ context.Context, userID int64) ([]model.Address, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.addresses, func(a model.Address) bool { return a.UserID == userID }), nil
}

func (s *AddressStore) Exists(_ context.Context, a *model.Address) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.addresses, func(row model.Address) bool {
		return row.UserID == a.UserID &&
			row.AddressLine1 == a.AddressLine1 &&
			sameString(row.SubDistrict, a.SubDistrict) &&
			row.City == a.City &&
			row.Province == a.Province &&
			row.PostalCode == a.PostalCode
	}) >= 0, nil
}

func (s *AddressStore) clearDefaults(userID, exceptID int64) {
	for i := range s.db.addresses {
		if s.db.addresses[i].UserID == userID && s.db.addresses[i].ID != exceptID {
			s.db.addresses[i].IsDefault = false
		}
	}
}

func (s *AddressStore) Create(_ context.Context, a *model.Address) (*model.Address, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	row := *a
	row.ID = s.db.next("addresses")
	if row.IsDefault {
		s.clearDefaults(row.UserID, 0)
	}

	s.db.addresses = append(s.db.addresses, row)
	return ptr(row), nil
}

func (s *AddressStore) Update(_ context.Context, a *model.Address) (*model.Address, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.addresses, func(row model.Address) bool { return row.ID == a.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if a.IsDefault {
		s.clearDefaults(a.UserID, a.ID)
	}

	s.db.addresses[i] = *a
	return ptr(*a), nil
}

func (s *AddressStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.addresses, func(row model.Address) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}
	if indexOf(s.db.orders, func(row model.Order) bool { return row.AddressID == id }) >= 0 {
		return 0, stillReferenced("addresses", "orders", "orders_address_id_fkey")
	}

	s.db.addresses = append(s.db.addresses[:i], s.db.addresses[i+1:]...)
	return id, nil
}

type OrderStore struct{ db *DB }

func (s *OrderStore) List(_ context.Context) ([]model.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.orders, func(o model.Order) bool { return o.IsAvailable }), nil
}

func (s *OrderStore) GetByID(_ context.Context, id int64) (*model.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.orders, func(o model.Order) bool { return o.ID == id && o.IsAvailable })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.orders[i]), nil
}

func (s *OrderStore) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.orders, func(o model.Order) bool { return o.UserID == userID && o.IsAvailable }), nil
}

func (s *OrderStore) addressExists(id int64) bool {
	return indexOf(s.db.addresses, func(a model.Address) bool { return a.ID == id }) >= 0
}

func (s *OrderStore) Create(_ context.Context, o *model.Order) (*model.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if !s.addressExists(o.AddressID) {
		return nil, foreignKeyViolation("orders", "orders_address_id_fkey")
	}

	row := *o
	row.ID = s.db.next("orders")
	row.OrderDate = s.db.Now().UTC().Truncate(time.Microsecond)
	row.IsAvailable = true
	s.db.orders = append(s.db.orders, row)
	return ptr(row), nil
}

func (s *OrderStore) Update(_ context.Context, o *model.Order) (*model.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.orders, func(row model.Order) bool { return row.ID == o.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if !s.addressExists(o.AddressID) {
		return nil, foreignKeyViolation("orders", "orders_address_id_fkey")
	}

	row := *o
	row.OrderDate = s.db.orders[i].OrderDate
	s.db.orders[i] = row
	return ptr(row), nil
}

func (s *OrderStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.orders, func(row model.Order) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}
	if indexOf(s.db.orderItems, func(row model.OrderItem) bool { return row.OrderID == id }) >= 0 {
		return 0, stillReferenced("orders", "order_items", "order_items_order_id_fkey")
	}

	s.db.orders = append(s.db.orders[:i], s.db.orders[i+1:]...)
	return id, nil
}

type OrderItemStore struct{ db *DB }

// visible reports whether the item's order exists and is available.
func (s *OrderItemStore) visible(oi model.OrderItem) bool {
	return indexOf(s.db.orders, func(o model.Order) bool { return o.ID == oi.OrderID && o.IsAvailable }) >= 0
}

func (s *OrderItemStore) List(_ context.Context) ([]model.OrderItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.orderItems, s.visible), nil
}

func (s *OrderItemStore) GetByID(_ context.Context, id int64) (*model.OrderItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.orderItems, func(oi model.OrderItem) bool { return oi.ID == id && s.visible(oi) })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.orderItems[i]), nil
}

func (s *OrderItemStore) ListByOrder(_ context.Context, orderID int64) ([]model.OrderItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.orderItems, func(oi model.OrderItem) bool { return oi.OrderID == orderID && s.visible(oi) }), nil
}

func (s *OrderItemStore) Exists(_ context.Context, orderID, productID int64, customizations *string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.orderItems, func(oi model.OrderItem) bool {
		return oi.OrderID == orderID && oi.ProductID == productID && sameString(oi.Customizations, customizations)
	}) >= 0, nil
}

func (s *OrderItemStore) checkReferences(oi *model.OrderItem) error {
	if indexOf(s.db.orders, func(o model.Order) bool { return o.ID == oi.OrderID }) < 0 {
		return foreignKeyViolation("order_items", "order_items_order_id_fkey")
	}
	if indexOf(s.db.products, func(p model.Product) bool { return p.ID == oi.ProductID }) < 0 {
		return foreignKeyViolation("order_items", "order_items_product_id_fkey")
	}
	return nil
}

func (s *OrderItemStore) Create(_ context.Context, oi *model.OrderItem) (*model.OrderItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if err := s.checkReferences(oi); err != nil {
		return nil, err
	}

	row := *oi
	row.ID = s.db.next("order_items")
	s.db.orderItems = append(s.db.orderItems, row)
	return ptr(row), nil
}

func (s *OrderItemStore) Update(_ context.Context, oi *model.OrderItem) (*model.OrderItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.orderItems, func(row model.OrderItem) bool { return row.ID == oi.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if err := s.checkReferences(oi); err != nil {
		return nil, err
	}

	s.db.orderItems[i] = *oi
	return ptr(*oi), nil
}

func (s *OrderItemStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.orderItems, func(row model.OrderItem) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}

	s.db.orderItems = append(s.db.orderItems[:i], s.db.orderItems[i+1:]...)
	return id, nil
}
