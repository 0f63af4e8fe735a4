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

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	ImageURL    *string          `json:"image_url"`
	IsAvailable *bool            `json:"is_available"`
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:        r.Name,
		Description: emptyToNil(r.Description),
		Price:       nullDecimal(r.Price),
		Category:    r.Category,
		ImageURL:    emptyToNil(r.ImageURL),
		IsAvailable: boolOr(r.IsAvailable, true),
	}
}

// UpdateProductRequest replaces every column. description, price and
// category must be sent but may be null.
type UpdateProductRequest struct {
	ID          int64                                `param:"id" json:"-"`
	Name        *string                              `json:"name" validate:"required"`
	Description validation.Nullable[string]          `json:"description" validate:"required"`
	Price       validation.Nullable[decimal.Decimal] `json:"price" validate:"required"`
	Category    validation.Nullable[string]          `json:"category" validate:"required"`
	ImageURL    *string                              `json:"image_url"`
	IsAvailable *bool                                `json:"is_available" validate:"required"`
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateProductRequest) toModel() *model.Product {
	return &model.Product{
		ID:          r.ID,
		Name:        *r.Name,
		Description: r.Description.Value,
		Price:       nullDecimal(r.Price.Value),
		Category:    r.Category.Value,
		ImageURL:    r.ImageURL,
		IsAvailable: *r.IsAvailable,
	}
}

type ProductCategoryRequest struct {
	Category string `param:"categoryName" json:"-"`
}

func (r *ProductCategoryRequest) Validate() error {
	return nil
}

type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.Product, error) {
		return h.products.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.Product, error) {
		return h.products.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]string, error) {
		return h.products.Categories(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

// ListByCategory matches the category case-insensitively.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *ProductCategoryRequest) ([]model.Product, error) {
		return h.products.ListByCategory(c.Request().Context(), req.Category)
	}, http.StatusOK, &ProductCategoryRequest{})(c)
}

func (h *ProductHandler) ListOptions(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) ([]model.ProductOption, error) {
		return h.products.Options(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateProductRequest) (*ProductResponse, error) {
		product, err := h.products.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return nil, err
		}
		return &ProductResponse{Message: "Product created successfully", Product: product}, nil
	}, http.StatusCreated, &CreateProductRequest{})(c)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateProductRequest) (*model.Product, error) {
		return h.products.Update(c.Request().Context(), req.toModel())
	}, http.StatusOK, &UpdateProductRequest{})(c)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.products.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Product", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}
