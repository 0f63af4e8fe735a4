package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/server"
	"github.com/deppfellow/ordering-backend/internal/service"
	"github.com/deppfellow/ordering-backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PromotionRequest is the body of both POST and PUT /promotions.
// discount_value may be zero; every other field must be non-empty.
type PromotionRequest struct {
	CouponCode    string           `json:"coupon_code" validate:"required"`
	Description   *string          `json:"description"`
	DiscountType  string           `json:"discount_type" validate:"required"`
	DiscountValue *decimal.Decimal `json:"discount_value" validate:"required"`
	MinPurchase   decimal.Decimal  `json:"min_purchase" validate:"required"`
	StartDate     time.Time        `json:"start_date" validate:"required"`
	ExpiryDate    time.Time        `json:"expiry_date" validate:"required"`
}

func (r *PromotionRequest) Validate() error {
	var custom validation.CustomValidationErrors
	if !r.StartDate.IsZero() && !r.ExpiryDate.IsZero() && r.StartDate.After(r.ExpiryDate) {
		custom = append(custom, validation.CustomValidationError{
			Field:   "start_date",
			Message: "must not be after expiry_date",
		})
	}
	return validation.Combine(validation.Struct(r), custom)
}

func (r *PromotionRequest) toModel(id int64) *model.Promotion {
	return &model.Promotion{
		ID:            id,
		CouponCode:    r.CouponCode,
		Description:   emptyToNil(r.Description),
		DiscountType:  r.DiscountType,
		DiscountValue: *r.DiscountValue,
		MinPurchase:   r.MinPurchase,
		StartDate:     r.StartDate,
		ExpiryDate:    r.ExpiryDate,
	}
}

type UpdatePromotionRequest struct {
	ID int64 `param:"id" json:"-"`
	PromotionRequest
}

type PromotionHandler struct {
	Handler
	promotions *service.PromotionService
}

func NewPromotionHandler(s *server.Server, promotions *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		Handler:    NewHandler(s),
		promotions: promotions,
	}
}

// ListPromotions returns the promotions whose window contains now.
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.Promotion, error) {
		return h.promotions.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.Promotion, error) {
		return h.promotions.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *PromotionRequest) (*DataResponse[*model.Promotion], error) {
		promotion, err := h.promotions.Create(c.Request().Context(), req.toModel(0))
		if err != nil {
			return nil, err
		}
		return &DataResponse[*model.Promotion]{Message: "Promotion created successfully", Data: promotion}, nil
	}, http.StatusCreated, &PromotionRequest{})(c)
}

func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdatePromotionRequest) (*DataResponse[*model.Promotion], error) {
		promotion, err := h.promotions.Update(c.Request().Context(), req.toModel(req.ID))
		if err != nil {
			return nil, err
		}
		return &DataResponse[*model.Promotion]{Message: "Promotion updated successfully", Data: promotion}, nil
	}, http.StatusOK, &UpdatePromotionRequest{})(c)
}

func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.promotions.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Promotion", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}
