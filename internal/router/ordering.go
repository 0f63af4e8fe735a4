package router

import (
	"github.com/deppfellow/ordering-backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerOrderingRoutes(r *echo.Echo, h *handler.Handlers) {
	addresses := r.Group("/addresses")
	addresses.GET("", h.Address.ListAddresses)
	addresses.GET("/user/:id", h.Address.ListByUser)
	addresses.GET("/:id", h.Address.GetAddress)
	addresses.POST("", h.Address.CreateAddress)
	addresses.PUT("/:id", h.Address.UpdateAddress)
	addresses.DELETE("/:id", h.Address.DeleteAddress)

	orders := r.Group("/orders")
	orders.GET("", h.Order.ListOrders)
	orders.GET("/user/:id", h.Order.ListByUser)
	orders.GET("/:id", h.Order.GetOrder)
	orders.POST("", h.Order.CreateOrder)
	orders.PUT("/:id", h.Order.UpdateOrder)
	orders.DELETE("/:id", h.Order.DeleteOrder)

	orderItems := r.Group("/order-items")
	orderItems.GET("", h.OrderItem.ListOrderItems)
	orderItems.GET("/order/:id", h.OrderItem.ListByOrder)
	orderItems.GET("/:id", h.OrderItem.GetOrderItem)
	orderItems.POST("", h.OrderItem.CreateOrderItem)
	orderItems.PUT("/:id", h.OrderItem.UpdateOrderItem)
	orderItems.DELETE("/:id", h.OrderItem.DeleteOrderItem)
}
