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

type CreateToppingRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Category string          `json:"category" validate:"required"`
}

func (r *CreateToppingRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateToppingRequest struct {
	ID          int64            `param:"id" json:"-"`
	Name        *string          `json:"name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    *string          `json:"category" validate:"required"`
	IsAvailable *bool            `json:"is_available" validate:"required"`
}

func (r *UpdateToppingRequest) Validate() error {
	return validation.Struct(r)
}

type ToppingCategoryRequest struct {
	Category string `param:"category" json:"-"`
}

func (r *ToppingCategoryRequest) Validate() error {
	return nil
}

type ToppingHandler struct {
	Handler
	toppings *service.ToppingService
}

func NewToppingHandler(s *server.Server, toppings *service.ToppingService) *ToppingHandler {
	return &ToppingHandler{
		Handler:  NewHandler(s),
		toppings: toppings,
	}
}

func (h *ToppingHandler) ListToppings(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.Topping, error) {
		return h.toppings.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *ToppingHandler) GetTopping(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.Topping, error) {
		return h.toppings.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *ToppingHandler) ListByCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *ToppingCategoryRequest) ([]model.Topping, error) {
		return h.toppings.ListByCategory(c.Request().Context(), req.Category)
	}, http.StatusOK, &ToppingCategoryRequest{})(c)
}

func (h *ToppingHandler) CreateTopping(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateToppingRequest) (*ToppingResponse, error) {
		topping, err := h.toppings.Create(c.Request().Context(), &model.Topping{
			Name:     req.Name,
			Price:    req.Price,
			Category: req.Category,
		})
		if err != nil {
			return nil, err
		}
		return &ToppingResponse{Message: "Topping created successfully", Topping: topping}, nil
	}, http.StatusCreated, &CreateToppingRequest{})(c)
}

func (h *ToppingHandler) UpdateTopping(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateToppingRequest) (*model.Topping, error) {
		return h.toppings.Update(c.Request().Context(), &model.Topping{
			ID:          req.ID,
			Name:        *req.Name,
			Price:       *req.Price,
			Category:    *req.Category,
			IsAvailable: *req.IsAvailable,
		})
	}, http.StatusOK, &UpdateToppingRequest{})(c)
}

func (h *ToppingHandler) DeleteTopping(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.toppings.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Topping", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}
