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

type CreateComboSetRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price" validate:"required"`
	ImageURL    *string          `json:"image_url"`
	IsActive    *bool            `json:"is_active"`
}

func (r *CreateComboSetRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateComboSetRequest) toModel() *model.ComboSet {
	return &model.ComboSet{
		Name:        r.Name,
		Description: emptyToNil(r.Description),
		BasePrice:   *r.BasePrice,
		ImageURL:    emptyToNil(r.ImageURL),
		IsActive:    boolOr(r.IsActive, true),
	}
}

type UpdateComboSetRequest struct {
	ID          int64            `param:"id" json:"-"`
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price" validate:"required"`
	ImageURL    *string          `json:"image_url"`
	IsActive    *bool            `json:"is_active" validate:"required"`
}

func (r *UpdateComboSetRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateComboSetRequest) toModel() *model.ComboSet {
	return &model.ComboSet{
		ID:          r.ID,
		Name:        r.Name,
		Description: emptyToNil(r.Description),
		BasePrice:   *r.BasePrice,
		ImageURL:    emptyToNil(r.ImageURL),
		IsActive:    *r.IsActive,
	}
}

type ComboSetHandler struct {
	Handler
	comboSets *service.ComboSetService
}

func NewComboSetHandler(s *server.Server, comboSets *service.ComboSetService) *ComboSetHandler {
	return &ComboSetHandler{
		Handler:   NewHandler(s),
		comboSets: comboSets,
	}
}

func (h *ComboSetHandler) ListComboSets(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.ComboSet, error) {
		return h.comboSets.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *ComboSetHandler) GetComboSet(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.ComboSet, error) {
		return h.comboSets.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *ComboSetHandler) CreateComboSet(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateComboSetRequest) (*DataResponse[*model.ComboSet], error) {
		comboSet, err := h.comboSets.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return nil, err
		}
		return &DataResponse[*model.ComboSet]{Message: "Combo set created successfully", Data: comboSet}, nil
	}, http.StatusCreated, &CreateComboSetRequest{})(c)
}

func (h *ComboSetHandler) UpdateComboSet(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateComboSetRequest) (*DataResponse[*model.ComboSet], error) {
		comboSet, err := h.comboSets.Update(c.Request().Context(), req.toModel())
		if err != nil {
			return nil, err
		}
		return &DataResponse[*model.ComboSet]{Message: "Combo set updated successfully", Data: comboSet}, nil
	}, http.StatusOK, &UpdateComboSetRequest{})(c)
}

func (h *ComboSetHandler) DeleteComboSet(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.comboSets.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Combo set", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}

type CreateComboSetItemRequest struct {
	ItemID       int64  `json:"item_id" validate:"required"`
	ComboSetID   int64  `json:"combo_set_id" validate:"required"`
	CategoryName string `json:"category_name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required"`
}

func (r *CreateComboSetItemRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateComboSetItemRequest) toModel() *model.ComboSetItem {
	return &model.ComboSetItem{
		ID:           r.ItemID,
		ComboSetID:   r.ComboSetID,
		CategoryName: r.CategoryName,
		Quantity:     r.Quantity,
	}
}

// UpdateComboSetItemRequest addresses the item by :id; item_id itself
// cannot change.
type UpdateComboSetItemRequest struct {
	ID           int64  `param:"id" json:"-"`
	ComboSetID   int64  `json:"combo_set_id" validate:"required"`
	CategoryName string `json:"category_name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required"`
}

func (r *UpdateComboSetItemRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateComboSetItemRequest) toModel() *model.ComboSetItem {
	return &model.ComboSetItem{
		ID:           r.ID,
		ComboSetID:   r.ComboSetID,
		CategoryName: r.CategoryName,
		Quantity:     r.Quantity,
	}
}

type ComboSetItemHandler struct {
	Handler
	items *service.ComboSetItemService
}

func NewComboSetItemHandler(s *server.Server, items *service.ComboSetItemService) *ComboSetItemHandler {
	return &ComboSetItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *ComboSetItemHandler) ListComboSetItems(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.ComboSetItem, error) {
		return h.items.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

// ListByComboSet answers 404 when the combo set has no items.
func (h *ComboSetItemHandler) ListByComboSet(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) ([]model.ComboSetItem, error) {
		return h.items.ListByComboSet(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *ComboSetItemHandler) CreateComboSetItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateComboSetItemRequest) (*DataResponse[*model.ComboSetItem], error) {
		item, err := h.items.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return nil, err
		}
		return &DataResponse[*model.ComboSetItem]{Message: "Combo set item created successfully", Data: item}, nil
	}, http.StatusCreated, &CreateComboSetItemRequest{})(c)
}

func (h *ComboSetItemHandler) UpdateComboSetItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateComboSetItemRequest) (*DataResponse[*model.ComboSetItem], error) {
		item, err := h.items.Update(c.Request().Context(), req.toModel())
		if err != nil {
			return nil, err
		}
		return &DataResponse[*model.ComboSetItem]{Message: "Combo set item updated successfully", Data: item}, nil
	}, http.StatusOK, &UpdateComboSetItemRequest{})(c)
}

func (h *ComboSetItemHandler) DeleteComboSetItem(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.items.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Combo set item", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}
