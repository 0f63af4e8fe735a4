package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/ordering-backend/internal/errs"
	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/deppfellow/ordering-backend/internal/repository/repotest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ProductStore      = (*repotest.ProductStore)(nil)
	_ ComboSetStore     = (*repotest.ComboSetStore)(nil)
	_ ComboSetItemStore = (*repotest.ComboSetItemStore)(nil)
	_ ToppingStore      = (*repotest.ToppingStore)(nil)
	_ PromotionStore    = (*repotest.PromotionStore)(nil)
	_ AddressStore      = (*repotest.AddressStore)(nil)
	_ OrderStore        = (*repotest.OrderStore)(nil)
	_ OrderItemStore    = (*repotest.OrderItemStore)(nil)
)

func strPtr(s string) *string { return &s }

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestProductCreateConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(repotest.New().Products())

	created, err := svc.Create(ctx, &model.Product{
		Name:        "Latte",
		Price:       decimal.NewNullDecimal(decimal.NewFromInt(90)),
		Category:    strPtr("coffee"),
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, &model.Product{Name: "Latte", IsAvailable: true})
	httpErr := requireHTTPError(t, err, http.StatusConflict)
	assert.Equal(t, "CONFLICT", httpErr.Code)
}

func TestProductAvailabilityToggle(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(repotest.New().Products())

	p, err := svc.Create(ctx, &model.Product{Name: "Mocha", IsAvailable: true})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	p.IsAvailable = false
	_, err = svc.Update(ctx, p)
	require.NoError(t, err)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Get(ctx, p.ID)
	httpErr := requireHTTPError(t, err, http.StatusNotFound)
	assert.Equal(t, "Product not found", httpErr.Message)
}

func TestProductCategoriesSortedDistinct(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(repotest.New().Products())

	for _, p := range []model.Product{
		{Name: "Latte", Category: strPtr("coffee"), IsAvailable: true},
		{Name: "Green", Category: strPtr("tea"), IsAvailable: true},
		{Name: "Mocha", Category: strPtr("coffee"), IsAvailable: true},
		{Name: "Water", IsAvailable: true},
	} {
		_, err := svc.Create(ctx, &p)
		require.NoError(t, err)
	}

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee", "tea"}, categories)

	coffee, err := svc.ListByCategory(ctx, "COFFEE")
	require.NoError(t, err)
	assert.Len(t, coffee, 2)
}

func TestProductDeleteReferencedByOrderItem(t *testing.T) {
	ctx := context.Background()
	db := repotest.New()
	products := NewProductService(db.Products())
	addresses := NewAddressService(db.Addresses())
	orders := NewOrderService(db.Orders())
	items := NewOrderItemService(db.OrderItems())

	p, err := products.Create(ctx, &model.Product{Name: "Latte", IsAvailable: true})
	require.NoError(t, err)
	a, err := addresses.Create(ctx, &model.Address{UserID: 1, AddressLine1: "1 Main", City: "C", Province: "P", PostalCode: "10000", RecipientName: "R", PhoneNumber: "0"})
	require.NoError(t, err)
	o, err := orders.Create(ctx, &model.Order{UserID: 1, AddressID: a.ID, TotalAmount: decimal.NewFromInt(90), Status: "pending", PaymentMethod: "cash"})
	require.NoError(t, err)
	_, err = items.Create(ctx, &model.OrderItem{OrderID: o.ID, ProductID: p.ID, Quantity: 1, PricePerUnit: decimal.NewFromInt(90)})
	require.NoError(t, err)

	_, err = products.Delete(ctx, p.ID)
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "PRODUCT_IN_USE", httpErr.Code)
	assert.Contains(t, httpErr.Message, "still referenced")
}

func TestDeleteTwiceIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewToppingService(repotest.New().Toppings())

	topping, err := svc.Create(ctx, &model.Topping{Name: "Pearl", Price: decimal.NewFromInt(10), Category: "jelly"})
	require.NoError(t, err)
	assert.True(t, topping.IsAvailable)

	id, err := svc.Delete(ctx, topping.ID)
	require.NoError(t, err)
	assert.Equal(t, topping.ID, id)

	_, err = svc.Delete(ctx, topping.ID)
	requireHTTPError(t, err, http.StatusNotFound)
}

func TestToppingUniquePerCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewToppingService(repotest.New().Toppings())

	_, err := svc.Create(ctx, &model.Topping{Name: "Pearl", Price: decimal.NewFromInt(10), Category: "jelly"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.Topping{Name: "Pearl", Price: decimal.NewFromInt(10), Category: "cream"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.Topping{Name: "Pearl", Price: decimal.NewFromInt(12), Category: "jelly"})
	requireHTTPError(t, err, http.StatusConflict)
}

func TestComboSetItemsByComboEmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	db := repotest.New()
	sets := NewComboSetService(db.ComboSets())
	items := NewComboSetItemService(db.ComboSetItems())

	_, err := items.ListByComboSet(ctx, 999)
	requireHTTPError(t, err, http.StatusNotFound)

	cs, err := sets.Create(ctx, &model.ComboSet{Name: "Lunch", BasePrice: decimal.NewFromInt(150), IsActive: true})
	require.NoError(t, err)

	_, err = items.Create(ctx, &model.ComboSetItem{ID: 10, ComboSetID: cs.ID, CategoryName: "drink", Quantity: 1})
	require.NoError(t, err)

	_, err = items.Create(ctx, &model.ComboSetItem{ID: 10, ComboSetID: cs.ID, CategoryName: "main", Quantity: 1})
	requireHTTPError(t, err, http.StatusConflict)

	list, err := items.ListByComboSet(ctx, cs.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = sets.Delete(ctx, cs.ID)
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "COMBO_SET_IN_USE", httpErr.Code)
}

func TestComboSetItemMissingComboSet(t *testing.T) {
	ctx := context.Background()
	items := NewComboSetItemService(repotest.New().ComboSetItems())

	_, err := items.Create(ctx, &model.ComboSetItem{ID: 1, ComboSetID: 42, CategoryName: "drink", Quantity: 1})
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "The referenced Combo Set does not exist", httpErr.Message)
}

func TestOrderItemsByOrderEmptyIsOK(t *testing.T) {
	items := NewOrderItemService(repotest.New().OrderItems())

	list, err := items.ListByOrder(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestOrderItemDuplicateCustomizations(t *testing.T) {
	ctx := context.Background()
	db := repotest.New()
	p, err := NewProductService(db.Products()).Create(ctx, &model.Product{Name: "Latte", IsAvailable: true})
	require.NoError(t, err)
	a, err := NewAddressService(db.Addresses()).Create(ctx, &model.Address{UserID: 1, AddressLine1: "1 Main", City: "C", Province: "P", PostalCode: "1", RecipientName: "R", PhoneNumber: "0"})
	require.NoError(t, err)
	o, err := NewOrderService(db.Orders()).Create(ctx, &model.Order{UserID: 1, AddressID: a.ID, TotalAmount: decimal.NewFromInt(1), Status: "pending", PaymentMethod: "cash"})
	require.NoError(t, err)

	items := NewOrderItemService(db.OrderItems())
	base := model.OrderItem{OrderID: o.ID, ProductID: p.ID, Quantity: 1, PricePerUnit: decimal.NewFromInt(90)}

	_, err = items.Create(ctx, &base)
	require.NoError(t, err)

	_, err = items.Create(ctx, &base)
	requireHTTPError(t, err, http.StatusConflict)

	withSugar := base
	withSugar.Customizations = strPtr("less sugar")
	_, err = items.Create(ctx, &withSugar)
	require.NoError(t, err)
}

func TestOrderItemHiddenWithUnavailableOrder(t *testing.T) {
	ctx := context.Background()
	db := repotest.New()
	p, err := NewProductService(db.Products()).Create(ctx, &model.Product{Name: "Latte", IsAvailable: true})
	require.NoError(t, err)
	a, err := NewAddressService(db.Addresses()).Create(ctx, &model.Address{UserID: 1, AddressLine1: "1 Main", City: "C", Province: "P", PostalCode: "1", RecipientName: "R", PhoneNumber: "0"})
	require.NoError(t, err)

	orders := NewOrderService(db.Orders())
	o, err := orders.Create(ctx, &model.Order{UserID: 1, AddressID: a.ID, TotalAmount: decimal.NewFromInt(1), Status: "pending", PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.True(t, o.IsAvailable)
	assert.False(t, o.OrderDate.IsZero())

	items := NewOrderItemService(db.OrderItems())
	item, err := items.Create(ctx, &model.OrderItem{OrderID: o.ID, ProductID: p.ID, Quantity: 2, PricePerUnit: decimal.NewFromInt(45)})
	require.NoError(t, err)

	o.IsAvailable = false
	_, err = orders.Update(ctx, o)
	require.NoError(t, err)

	list, err := items.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = items.Get(ctx, item.ID)
	requireHTTPError(t, err, http.StatusNotFound)
}

func TestAddressDefaultExclusivity(t *testing.T) {
	ctx := context.Background()
	svc := NewAddressService(repotest.New().Addresses())

	newAddress := func(line string) *model.Address {
		return &model.Address{
			UserID: 7, AddressLine1: line, City: "Bangkok", Province: "BKK",
			PostalCode: "10110", IsDefault: true, RecipientName: "Ann", PhoneNumber: "0812345678",
		}
	}

	a, err := svc.Create(ctx, newAddress("1 Sukhumvit"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, newAddress("2 Silom"))
	require.NoError(t, err)

	gotA, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, gotA.IsDefault)

	gotA.IsDefault = true
	_, err = svc.Update(ctx, gotA)
	require.NoError(t, err)

	gotB, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, gotB.IsDefault)

	_, err = svc.Create(ctx, newAddress("1 Sukhumvit"))
	requireHTTPError(t, err, http.StatusConflict)
}

func TestAddressDuplicateWithNullSubDistrict(t *testing.T) {
	ctx := context.Background()
	svc := NewAddressService(repotest.New().Addresses())

	a := &model.Address{UserID: 1, AddressLine1: "9 Rama", City: "C", Province: "P", PostalCode: "1", RecipientName: "R", PhoneNumber: "0"}
	_, err := svc.Create(ctx, a)
	require.NoError(t, err)

	_, err = svc.Create(ctx, a)
	requireHTTPError(t, err, http.StatusConflict)

	other := *a
	other.SubDistrict = strPtr("Bang Rak")
	_, err = svc.Create(ctx, &other)
	require.NoError(t, err)
}

func TestPromotionWindow(t *testing.T) {
	ctx := context.Background()
	db := repotest.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	db.Now = func() time.Time { return now }
	svc := NewPromotionService(db.Promotions())

	current, err := svc.Create(ctx, &model.Promotion{
		CouponCode: "SUMMER", DiscountType: "percent", DiscountValue: decimal.NewFromInt(10),
		MinPurchase: decimal.NewFromInt(100), StartDate: now.AddDate(0, -1, 0), ExpiryDate: now.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	expired, err := svc.Create(ctx, &model.Promotion{
		CouponCode: "SPRING", DiscountType: "percent", DiscountValue: decimal.NewFromInt(10),
		MinPurchase: decimal.NewFromInt(100), StartDate: now.AddDate(0, -3, 0), ExpiryDate: now.AddDate(0, -2, 0),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, current.ID, list[0].ID)

	_, err = svc.Get(ctx, expired.ID)
	requireHTTPError(t, err, http.StatusNotFound)

	_, err = svc.Create(ctx, &model.Promotion{CouponCode: "SUMMER", StartDate: now, ExpiryDate: now})
	requireHTTPError(t, err, http.StatusConflict)
}

func TestUnknownStoreErrorIsInternal(t *testing.T) {
	db := repotest.New()
	db.Err = errors.New("connection reset by peer")
	svc := NewOrderService(db.Orders())

	_, err := svc.List(context.Background())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError)
	assert.Equal(t, "connection reset by peer", httpErr.ErrorDetail)
}

func TestOrderMissingAddress(t *testing.T) {
	svc := NewOrderService(repotest.New().Orders())

	_, err := svc.Create(context.Background(), &model.Order{UserID: 1, AddressID: 5, TotalAmount: decimal.NewFromInt(1), Status: "pending", PaymentMethod: "cash"})
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "The referenced Address does not exist", httpErr.Message)
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	svc := NewComboSetService(repotest.New().ComboSets())

	_, err := svc.Update(context.Background(), &model.ComboSet{ID: 3, Name: "Ghost", BasePrice: decimal.NewFromInt(1)})
	httpErr := requireHTTPError(t, err, http.StatusNotFound)
	assert.Equal(t, "Combo set not found", httpErr.Message)
}
