package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/ordering-backend/internal/config"
	"github.com/deppfellow/ordering-backend/internal/handler"
	"github.com/deppfellow/ordering-backend/internal/middleware"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/repository/repotest"
	"github.com/deppfellow/ordering-backend/internal/server"
	"github.com/deppfellow/ordering-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t  *testing.T
	e  *echo.Echo
	db *repotest.DB
}

func newAPI(t *testing.T) *api {
	t.Helper()

	db := repotest.New()
	services := &service.Services{
		Products:      service.NewProductService(db.Products()),
		ComboSets:     service.NewComboSetService(db.ComboSets()),
		ComboSetItems: service.NewComboSetItemService(db.ComboSetItems()),
		Toppings:      service.NewToppingService(db.Toppings()),
		Promotions:    service.NewPromotionService(db.Promotions()),
		Addresses:     service.NewAddressService(db.Addresses()),
		Orders:        service.NewOrderService(db.Orders()),
		OrderItems:    service.NewOrderItemService(db.OrderItems()),
	}

	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				CORSAllowedOrigins: []string{"*"},
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	return &api{t: t, e: NewRouter(srv, handler.NewHandlers(srv, services)), db: db}
}

func (a *api) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func object(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func list(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	var out []interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestProductRoundTrip(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/products", `{"name":"Latte","price":90,"category":"coffee"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := object(t, rec)
	assert.Equal(t, "Product created successfully", created["message"])
	product := created["product"].(map[string]interface{})
	assert.Equal(t, "90", product["price"])
	assert.Equal(t, true, product["is_available"])
	assert.Nil(t, product["description"])

	rec = a.do(http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := object(t, rec)
	assert.Equal(t, "Latte", got["name"])
	assert.Equal(t, "coffee", got["category"])

	rec = a.do(http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list(t, rec), 1)
}

func TestProductCatalogQueries(t *testing.T) {
	a := newAPI(t)

	for _, body := range []string{
		`{"name":"Mocha","category":"coffee"}`,
		`{"name":"Latte","category":"coffee"}`,
		`{"name":"Matcha","category":"tea"}`,
		`{"name":"Water"}`,
	} {
		require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/products", body).Code)
	}

	rec := a.do(http.MethodGet, "/products/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{"coffee", "tea"}, list(t, rec))

	rec = a.do(http.MethodGet, "/products/categories/coffee", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list(t, rec), 2)

	a.db.AddProductOption(1, model.ProductOption{OptionType: "size", OptionName: "Large", AdditionalPrice: decimal.NewFromInt(10)}, true)
	a.db.AddProductOption(1, model.ProductOption{OptionType: "milk", OptionName: "Oat", AdditionalPrice: decimal.NewFromInt(15)}, false)

	rec = a.do(http.MethodGet, "/products/1/options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	options := list(t, rec)
	require.Len(t, options, 1)
	assert.Equal(t, "Large", options[0].(map[string]interface{})["option_name"])
	assert.Equal(t, "10", options[0].(map[string]interface{})["additional_price"])
}

func TestProductDuplicateNameConflict(t *testing.T) {
	a := newAPI(t)

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/products", `{"name":"Latte"}`).Code)

	rec := a.do(http.MethodPost, "/products", `{"name":"Latte"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", object(t, rec)["code"])
}

func TestProductFullReplaceNullsOmittedOptionals(t *testing.T) {
	a := newAPI(t)

	body := `{"name":"Latte","description":"hot","price":"90","category":"coffee","image_url":"latte.png"}`
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/products", body).Code)

	rec := a.do(http.MethodPut, "/products/1",
		`{"name":"Latte","description":null,"price":null,"category":"coffee","is_available":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := object(t, rec)
	assert.Equal(t, float64(1), updated["product_id"])
	assert.Nil(t, updated["description"])
	assert.Nil(t, updated["price"])
	assert.Nil(t, updated["image_url"])
}

func TestProductUpdateRequiresEveryKey(t *testing.T) {
	a := newAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/products", `{"name":"Latte"}`).Code)

	rec := a.do(http.MethodPut, "/products/1", `{"name":"Latte","category":"coffee","is_available":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	fields := map[string]bool{}
	for _, fe := range object(t, rec)["errors"].([]interface{}) {
		fields[fe.(map[string]interface{})["field"].(string)] = true
	}
	assert.Equal(t, map[string]bool{"description": true, "price": true}, fields)
}

func TestProductUpdateMissingIsNotFound(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPut, "/products/42",
		`{"name":"Ghost","description":null,"price":null,"category":null,"is_available":true}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", object(t, rec)["message"])
}

func TestValidationAndBindingErrors(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/products", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := object(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["code"])
	require.Len(t, body["errors"], 1)

	rec = a.do(http.MethodPost, "/toppings", `{"name":"Pearl","price":0,"category":"tea"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, list(t, rec))
}

func TestUnknownRoute(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", object(t, rec)["message"])
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestDeleteTwice(t *testing.T) {
	a := newAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/toppings", `{"name":"Pearl","price":"10","category":"tea"}`).Code)

	rec := a.do(http.MethodDelete, "/toppings/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := object(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Topping deleted successfully", body["message"])

	rec = a.do(http.MethodDelete, "/toppings/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReferencedProductDelete(t *testing.T) {
	a := newAPI(t)

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/products", `{"name":"Latte","price":90}`).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/addresses",
		`{"user_id":1,"address_line1":"1 Main St","city":"Bangkok","province":"Bangkok","postal_code":"10110","recipient_name":"Ann","phone_number":"0800000000"}`).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/orders",
		`{"user_id":1,"address_id":1,"total_amount":"180","status":"pending","payment_method":"cash"}`).Code)

	rec := a.do(http.MethodPost, "/order-items", `{"order_id":1,"product_id":1,"quantity":2,"price_per_unit":90}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, object(t, rec), "order_item")

	rec = a.do(http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PRODUCT_IN_USE", object(t, rec)["code"])
}

func TestOrderReferencingMissingAddress(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/orders",
		`{"user_id":1,"address_id":9,"total_amount":"180","status":"pending","payment_method":"cash"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The referenced Address does not exist", object(t, rec)["message"])
}

func TestChildListsByParent(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/combo-set-items/combo/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/order-items/order/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/combo-sets", `{"name":"Lunch","base_price":"199"}`).Code)
	rec = a.do(http.MethodPost, "/combo-set-items", `{"item_id":10,"combo_set_id":1,"category_name":"drink","quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Combo set item created successfully", object(t, rec)["message"])

	rec = a.do(http.MethodGet, "/combo-set-items/combo/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list(t, rec), 1)
}

func TestPromotionWindowValidation(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/promotions",
		`{"coupon_code":"SAVE10","discount_type":"percent","discount_value":10,"min_purchase":100,"start_date":"2025-02-01T00:00:00Z","expiry_date":"2025-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := object(t, rec)["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "start_date", errs[0].(map[string]interface{})["field"])

	rec = a.do(http.MethodPost, "/promotions",
		`{"coupon_code":"FREE","discount_type":"fixed","discount_value":0,"min_purchase":100,"start_date":"2025-01-01T00:00:00Z","expiry_date":"2099-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := object(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "0", data["discount_value"])
}

func TestAddressDefaultExclusivity(t *testing.T) {
	a := newAPI(t)

	first := `{"user_id":7,"address_line1":"1 Main St","city":"Bangkok","province":"Bangkok","postal_code":"10110","is_default":true,"recipient_name":"Ann","phone_number":"0800000000"}`
	second := `{"user_id":7,"address_line1":"2 Side St","city":"Bangkok","province":"Bangkok","postal_code":"10110","is_default":true,"recipient_name":"Ann","phone_number":"0800000000","sub_district":""}`
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/addresses", first).Code)

	rec := a.do(http.MethodPost, "/addresses", second)
	require.Equal(t, http.StatusCreated, rec.Code)
	address := object(t, rec)["address"].(map[string]interface{})
	assert.Nil(t, address["sub_district"])

	rec = a.do(http.MethodGet, "/addresses/user/7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	defaults := 0
	for _, row := range list(t, rec) {
		if row.(map[string]interface{})["is_default"] == true {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	rec = a.do(http.MethodPost, "/addresses", first)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnknownStoreErrorCarriesDetail(t *testing.T) {
	a := newAPI(t)
	a.db.Err = errors.New("connection refused")

	rec := a.do(http.MethodGet, "/toppings", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := object(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["code"])
	assert.Equal(t, "connection refused", body["error_detail"])
}
