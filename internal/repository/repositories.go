package repository

import (
	"github.com/deppfellow/ordering-backend/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository shares the pool owned by the server container; none of
// them keeps package-level state.
type Repositories struct {
	Products      *ProductRepository
	ComboSets     *ComboSetRepository
	ComboSetItems *ComboSetItemRepository
	Toppings      *ToppingRepository
	Promotions    *PromotionRepository
	Addresses     *AddressRepository
	Orders        *OrderRepository
	OrderItems    *OrderItemRepository
}

// NewRepositories constructs the repository container on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool

	return &Repositories{
		Products:      NewProductRepository(pool),
		ComboSets:     NewComboSetRepository(pool),
		ComboSetItems: NewComboSetItemRepository(pool),
		Toppings:      NewToppingRepository(pool),
		Promotions:    NewPromotionRepository(pool),
		Addresses:     NewAddressRepository(pool),
		Orders:        NewOrderRepository(pool),
		OrderItems:    NewOrderItemRepository(pool),
	}
}
