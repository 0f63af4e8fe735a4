package service

import (
	"github.com/deppfellow/ordering-backend/internal/repository"
)

// Services groups one service per resource.
type Services struct {
	Products      *ProductService
	ComboSets     *ComboSetService
	ComboSetItems *ComboSetItemService
	Toppings      *ToppingService
	Promotions    *PromotionService
	Addresses     *AddressService
	Orders        *OrderService
	OrderItems    *OrderItemService
}

// NewService wires every service to its repository.
func NewService(repos *repository.Repositories) *Services {
	return &Services{
		Products:      NewProductService(repos.Products),
		ComboSets:     NewComboSetService(repos.ComboSets),
		ComboSetItems: NewComboSetItemService(repos.ComboSetItems),
		Toppings:      NewToppingService(repos.Toppings),
		Promotions:    NewPromotionService(repos.Promotions),
		Addresses:     NewAddressService(repos.Addresses),
		Orders:        NewOrderService(repos.Orders),
		OrderItems:    NewOrderItemService(repos.OrderItems),
	}
}

var (
	_ ProductStore      = (*repository.ProductRepository)(nil)
	_ ComboSetStore     = (*repository.ComboSetRepository)(nil)
	_ ComboSetItemStore = (*repository.ComboSetItemRepository)(nil)
	_ ToppingStore      = (*repository.ToppingRepository)(nil)
	_ PromotionStore    = (*repository.PromotionRepository)(nil)
	_ AddressStore      = (*repository.AddressRepository)(nil)
	_ OrderStore        = (*repository.OrderRepository)(nil)
	_ OrderItemStore    = (*repository.OrderItemRepository)(nil)
)
