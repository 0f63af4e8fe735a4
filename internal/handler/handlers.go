package handler

import (
	"github.com/deppfellow/ordering-backend/internal/server"
	"github.com/deppfellow/ordering-backend/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Product      *ProductHandler
	ComboSet     *ComboSetHandler
	ComboSetItem *ComboSetItemHandler
	Topping      *ToppingHandler
	Promotion    *PromotionHandler
	Address      *AddressHandler
	Order        *OrderHandler
	OrderItem    *OrderItemHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Product:      NewProductHandler(s, services.Products),
		ComboSet:     NewComboSetHandler(s, services.ComboSets),
		ComboSetItem: NewComboSetItemHandler(s, services.ComboSetItems),
		Topping:      NewToppingHandler(s, services.Toppings),
		Promotion:    NewPromotionHandler(s, services.Promotions),
		Address:      NewAddressHandler(s, services.Addresses),
		Order:        NewOrderHandler(s, services.Orders),
		OrderItem:    NewOrderItemHandler(s, services.OrderItems),
	}
}
