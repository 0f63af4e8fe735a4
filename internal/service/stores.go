package service

import (
	"context"

	"github.com/deppfellow/ordering-backend/internal/model"
)

// The store interfaces are what each service needs from persistence. The
// repository package satisfies them against PostgreSQL; repotest satisfies
// them in memory.
//
// Single-row reads, Update and Delete report a missing row as pgx.ErrNoRows.

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Options(ctx context.Context, productID int64) ([]model.ProductOption, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ComboSetStore interface {
	List(ctx context.Context) ([]model.ComboSet, error)
	GetByID(ctx context.Context, id int64) (*model.ComboSet, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, cs *model.ComboSet) (*model.ComboSet, error)
	Update(ctx context.Context, cs *model.ComboSet) (*model.ComboSet, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ComboSetItemStore interface {
	List(ctx context.Context) ([]model.ComboSetItem, error)
	ListByComboSet(ctx context.Context, comboSetID int64) ([]model.ComboSetItem, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error)
	Update(ctx context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ToppingStore interface {
	List(ctx context.Context) ([]model.Topping, error)
	GetByID(ctx context.Context, id int64) (*model.Topping, error)
	ListByCategory(ctx context.Context, category string) ([]model.Topping, error)
	Exists(ctx context.Context, name, category string) (bool, error)
	Create(ctx context.Context, t *model.Topping) (*model.Topping, error)
	Update(ctx context.Context, t *model.Topping) (*model.Topping, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type PromotionStore interface {
	List(ctx context.Context) ([]model.Promotion, error)
	GetByID(ctx context.Context, id int64) (*model.Promotion, error)
	ExistsByCouponCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, p *model.Promotion) (*model.Promotion, error)
	Update(ctx context.Context, p *model.Promotion) (*model.Promotion, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// AddressStore implementations clear the user's other defaults whenever
// Create or Update writes an address with IsDefault set.
type AddressStore interface {
	List(ctx context.Context) ([]model.Address, error)
	GetByID(ctx context.Context, id int64) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	Exists(ctx context.Context, a *model.Address) (bool, error)
	Create(ctx context.Context, a *model.Address) (*model.Address, error)
	Update(ctx context.Context, a *model.Address) (*model.Address, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrderStore interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, o *model.Order) (*model.Order, error)
	Update(ctx context.Context, o *model.Order) (*model.Order, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrderItemStore interface {
	List(ctx context.Context) ([]model.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*model.OrderItem, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	Exists(ctx context.Context, orderID, productID int64, customizations *string) (bool, error)
	Create(ctx context.Context, oi *model.OrderItem) (*model.OrderItem, error)
	Update(ctx context.Context, oi *model.OrderItem) (*model.OrderItem, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
