package handler

import (
	"net/http"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/server"
	"github.com/deppfellow/ordering-backend/internal/service"
	"github.com/deppfellow/ordering-backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest has no order_date or is_available: the store sets
// NOW() and true.
type CreateOrderRequest struct {
	UserID        int64           `json:"user_id" validate:"required"`
	AddressID     int64           `json:"address_id" validate:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"required"`
	Status        string          `json:"status" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateOrderRequest keeps the stored order_date.
type UpdateOrderRequest struct {
	ID            int64            `param:"id" json:"-"`
	UserID        *int64           `json:"user_id" validate:"required"`
	AddressID     *int64           `json:"address_id" validate:"required"`
	TotalAmount   *decimal.Decimal `json:"total_amount" validate:"required"`
	Status        *string          `json:"status" validate:"required"`
	PaymentMethod *string          `json:"payment_method" validate:"required"`
	IsAvailable   *bool            `json:"is_available" validate:"required"`
}

func (r *UpdateOrderRequest) Validate() error {
	return validation.Struct(r)
}

type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.Order, error) {
		return h.orders.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.Order, error) {
		return h.orders.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *OrderHandler) ListByUser(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) ([]model.Order, error) {
		return h.orders.ListByUser(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateOrderRequest) (*OrderResponse, error) {
		order, err := h.orders.Create(c.Request().Context(), &model.Order{
			UserID:        req.UserID,
			AddressID:     req.AddressID,
			TotalAmount:   req.TotalAmount,
			Status:        req.Status,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			return nil, err
		}
		return &OrderResponse{Message: "Order created successfully", Order: order}, nil
	}, http.StatusCreated, &CreateOrderRequest{})(c)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateOrderRequest) (*model.Order, error) {
		return h.orders.Update(c.Request().Context(), &model.Order{
			ID:            req.ID,
			UserID:        *req.UserID,
			AddressID:     *req.AddressID,
			TotalAmount:   *req.TotalAmount,
			Status:        *req.Status,
			PaymentMethod: *req.PaymentMethod,
			IsAvailable:   *req.IsAvailable,
		})
	}, http.StatusOK, &UpdateOrderRequest{})(c)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.orders.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Order", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}

type CreateOrderItemRequest struct {
	OrderID        int64           `json:"order_id" validate:"required"`
	ProductID      int64           `json:"product_id" validate:"required"`
	Quantity       int             `json:"quantity" validate:"required"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit" validate:"required"`
	Customizations *string         `json:"customizations"`
}

func (r *CreateOrderItemRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateOrderItemRequest struct {
	ID             int64            `param:"id" json:"-"`
	OrderID        *int64           `json:"order_id" validate:"required"`
	ProductID      *int64           `json:"product_id" validate:"required"`
	Quantity       *int             `json:"quantity" validate:"required"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit" validate:"required"`
	Customizations *string          `json:"customizations"`
}

func (r *UpdateOrderItemRequest) Validate() error {
	return validation.Struct(r)
}

type OrderItemHandler struct {
	Handler
	items *service.OrderItemService
}

func NewOrderItemHandler(s *server.Server, items *service.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *OrderItemHandler) ListOrderItems(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.OrderItem, error) {
		return h.items.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *OrderItemHandler) GetOrderItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.OrderItem, error) {
		return h.items.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

// ListByOrder answers 200 with [] when the order has no visible items.
func (h *OrderItemHandler) ListByOrder(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) ([]model.OrderItem, error) {
		return h.items.ListByOrder(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *OrderItemHandler) CreateOrderItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateOrderItemRequest) (*OrderItemResponse, error) {
		item, err := h.items.Create(c.Request().Context(), &model.OrderItem{
			OrderID:        req.OrderID,
			ProductID:      req.ProductID,
			Quantity:       req.Quantity,
			PricePerUnit:   req.PricePerUnit,
			Customizations: emptyToNil(req.Customizations),
		})
		if err != nil {
			return nil, err
		}
		return &OrderItemResponse{Message: "Order item created successfully", OrderItem: item}, nil
	}, http.StatusCreated, &CreateOrderItemRequest{})(c)
}

func (h *OrderItemHandler) UpdateOrderItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateOrderItemRequest) (*model.OrderItem, error) {
		return h.items.Update(c.Request().Context(), &model.OrderItem{
			ID:             req.ID,
			OrderID:        *req.OrderID,
			ProductID:      *req.ProductID,
			Quantity:       *req.Quantity,
			PricePerUnit:   *req.PricePerUnit,
			Customizations: emptyToNil(req.Customizations),
		})
	}, http.StatusOK, &UpdateOrderItemRequest{})(c)
}

func (h *OrderItemHandler) DeleteOrderItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.items.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Order item", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}
