package handler

import "github.com/deppfellow/ordering-backend/internal/model"

// DataResponse is the {message, data} envelope used by combo sets, combo
// set items and promotions.
type DataResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// DeletedResponse is returned by every DELETE.
type DeletedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type ProductResponse struct {
	Message string         `json:"message"`
	Product *model.Product `json:"product"`
}

type ToppingResponse struct {
	Message string         `json:"message"`
	Topping *model.Topping `json:"topping"`
}

type AddressResponse struct {
	Message string         `json:"message"`
	Address *model.Address `json:"address"`
}

type OrderResponse struct {
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
}

type OrderItemResponse struct {
	Message   string           `json:"message"`
	OrderItem *model.OrderItem `json:"order_item"`
}

func deleted(entity string, id int64) *DeletedResponse {
	return &DeletedResponse{Message: entity + " deleted successfully", ID: id}
}
