package handler

import (
	"net/http"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/server"
	"github.com/deppfellow/ordering-backend/internal/service"
	"github.com/deppfellow/ordering-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateAddressRequest struct {
	UserID        int64   `json:"user_id" validate:"required"`
	AddressLine1  string  `json:"address_line1" validate:"required"`
	City          string  `json:"city" validate:"required"`
	Province      string  `json:"province" validate:"required"`
	PostalCode    string  `json:"postal_code" validate:"required"`
	IsDefault     *bool   `json:"is_default"`
	RecipientName string  `json:"recipient_name" validate:"required"`
	PhoneNumber   string  `json:"phone_number" validate:"required"`
	AddressLabel  *string `json:"address_label"`
	SubDistrict   *string `json:"sub_district"`
}

func (r *CreateAddressRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateAddressRequest) toModel() *model.Address {
	return &model.Address{
		UserID:        r.UserID,
		AddressLine1:  r.AddressLine1,
		City:          r.City,
		Province:      r.Province,
		PostalCode:    r.PostalCode,
		IsDefault:     boolOr(r.IsDefault, false),
		RecipientName: r.RecipientName,
		PhoneNumber:   r.PhoneNumber,
		AddressLabel:  emptyToNil(r.AddressLabel),
		SubDistrict:   emptyToNil(r.SubDistrict),
	}
}

type UpdateAddressRequest struct {
	ID            int64   `param:"id" json:"-"`
	UserID        *int64  `json:"user_id" validate:"required"`
	AddressLine1  *string `json:"address_line1" validate:"required"`
	City          *string `json:"city" validate:"required"`
	Province      *string `json:"province" validate:"required"`
	PostalCode    *string `json:"postal_code" validate:"required"`
	IsDefault     *bool   `json:"is_default" validate:"required"`
	RecipientName *string `json:"recipient_name" validate:"required"`
	PhoneNumber   *string `json:"phone_number" validate:"required"`
	AddressLabel  *string `json:"address_label"`
	SubDistrict   *string `json:"sub_district"`
}

func (r *UpdateAddressRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateAddressRequest) toModel() *model.Address {
	return &model.Address{
		ID:            r.ID,
		UserID:        *r.UserID,
		AddressLine1:  *r.AddressLine1,
		City:          *r.City,
		Province:      *r.Province,
		PostalCode:    *r.PostalCode,
		IsDefault:     *r.IsDefault,
		RecipientName: *r.RecipientName,
		PhoneNumber:   *r.PhoneNumber,
		AddressLabel:  emptyToNil(r.AddressLabel),
		SubDistrict:   emptyToNil(r.SubDistrict),
	}
}

type AddressHandler struct {
	Handler
	addresses *service.AddressService
}

func NewAddressHandler(s *server.Server, addresses *service.AddressService) *AddressHandler {
	return &AddressHandler{
		Handler:   NewHandler(s),
		addresses: addresses,
	}
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]model.Address, error) {
		return h.addresses.List(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *AddressHandler) GetAddress(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.Address, error) {
		return h.addresses.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

// ListByUser reads :id as the user id.
func (h *AddressHandler) ListByUser(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) ([]model.Address, error) {
		return h.addresses.ListByUser(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})(c)
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateAddressRequest) (*AddressResponse, error) {
		address, err := h.addresses.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return nil, err
		}
		return &AddressResponse{Message: "Address created successfully", Address: address}, nil
	}, http.StatusCreated, &CreateAddressRequest{})(c)
}

func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *UpdateAddressRequest) (*model.Address, error) {
		return h.addresses.Update(c.Request().Context(), req.toModel())
	}, http.StatusOK, &UpdateAddressRequest{})(c)
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*DeletedResponse, error) {
		id, err := h.addresses.Delete(c.Request().Context(), req.ID)
		if err != nil {
			return nil, err
		}
		return deleted("Address", id), nil
	}, http.StatusOK, &IDRequest{})(c)
}
