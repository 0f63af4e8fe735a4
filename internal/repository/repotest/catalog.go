package repotest

import (
	"context"
	"sort"
	"strings"

	"github.com/deppfellow/ordering-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type ProductStore struct{ db *DB }

func (s *ProductStore) List(_ context.Context) ([]model.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.products, func(p model.Product) bool { return p.IsAvailable }), nil
}

func (s *ProductStore) GetByID(_ context.Context, id int64) (*model.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.products, func(p model.Product) bool { return p.ID == id && p.IsAvailable })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.products[i]), nil
}

func (s *ProductStore) ListByCategory(_ context.Context, category string) ([]model.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.products, func(p model.Product) bool {
		return p.IsAvailable && p.Category != nil && strings.EqualFold(*p.Category, category)
	}), nil
}

func (s *ProductStore) Categories(_ context.Context) ([]string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range s.db.products {
		if p.Category != nil && !seen[*p.Category] {
			seen[*p.Category] = true
			categories = append(categories, *p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *ProductStore) Options(_ context.Context, productID int64) ([]model.ProductOption, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	options := []model.ProductOption{}
	for _, row := range s.db.options {
		if row.productID == productID && row.available {
			options = append(options, row.option)
		}
	}
	return options, nil
}

func (s *ProductStore) ExistsByName(_ context.Context, name string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.products, func(p model.Product) bool { return p.Name == name }) >= 0, nil
}

func (s *ProductStore) Create(_ context.Context, p *model.Product) (*model.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if indexOf(s.db.products, func(row model.Product) bool { return row.Name == p.Name }) >= 0 {
		return nil, uniqueViolation("products", "products_name_key")
	}

	row := *p
	row.ID = s.db.next("products")
	s.db.products = append(s.db.products, row)
	return ptr(row), nil
}

func (s *ProductStore) Update(_ context.Context, p *model.Product) (*model.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.products, func(row model.Product) bool { return row.ID == p.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if indexOf(s.db.products, func(row model.Product) bool { return row.Name == p.Name && row.ID != p.ID }) >= 0 {
		return nil, uniqueViolation("products", "products_name_key")
	}

	s.db.products[i] = *p
	return ptr(*p), nil
}

func (s *ProductStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.products, func(row model.Product) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}
	if indexOf(s.db.orderItems, func(row model.OrderItem) bool { return row.ProductID == id }) >= 0 {
		return 0, stillReferenced("products", "order_items", "order_items_product_id_fkey")
	}
	if indexOf(s.db.options, func(row optionRow) bool { return row.productID == id }) >= 0 {
		return 0, stillReferenced("products", "product_options", "product_options_product_id_fkey")
	}

	s.db.products = append(s.db.products[:i], s.db.products[i+1:]...)
	return id, nil
}

type ComboSetStore struct{ db *DB }

func (s *ComboSetStore) List(_ context.Context) ([]model.ComboSet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.comboSets, func(cs model.ComboSet) bool { return cs.IsActive }), nil
}

func (s *ComboSetStore) GetByID(_ context.Context, id int64) (*model.ComboSet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.comboSets, func(cs model.ComboSet) bool { return cs.ID == id && cs.IsActive })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.comboSets[i]), nil
}

func (s *ComboSetStore) ExistsByName(_ context.Context, name string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.comboSets, func(cs model.ComboSet) bool { return cs.Name == name }) >= 0, nil
}

func (s *ComboSetStore) Create(_ context.Context, cs *model.ComboSet) (*model.ComboSet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if indexOf(s.db.comboSets, func(row model.ComboSet) bool { return row.Name == cs.Name }) >= 0 {
		return nil, uniqueViolation("combo_sets", "combo_sets_name_key")
	}

	row := *cs
	row.ID = s.db.next("combo_sets")
	s.db.comboSets = append(s.db.comboSets, row)
	return ptr(row), nil
}

func (s *ComboSetStore) Update(_ context.Context, cs *model.ComboSet) (*model.ComboSet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.comboSets, func(row model.ComboSet) bool { return row.ID == cs.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if indexOf(s.db.comboSets, func(row model.ComboSet) bool { return row.Name == cs.Name && row.ID != cs.ID }) >= 0 {
		return nil, uniqueViolation("combo_sets", "combo_sets_name_key")
	}

	s.db.comboSets[i] = *cs
	return ptr(*cs), nil
}

func (s *ComboSetStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.comboSets, func(row model.ComboSet) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}
	if indexOf(s.db.comboSetItems, func(row model.ComboSetItem) bool { return row.ComboSetID == id }) >= 0 {
		return 0, stillReferenced("combo_sets", "combo_set_items", "combo_set_items_combo_set_id_fkey")
	}

	s.db.comboSets = append(s.db.comboSets[:i], s.db.comboSets[i+1:]...)
	return id, nil
}

type ComboSetItemStore struct{ db *DB }

func (s *ComboSetItemStore) List(_ context.Context) ([]model.ComboSetItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.comboSetItems, func(item model.ComboSetItem) bool { return item.Quantity > 0 }), nil
}

func (s *ComboSetItemStore) ListByComboSet(_ context.Context, comboSetID int64) ([]model.ComboSetItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.comboSetItems, func(item model.ComboSetItem) bool {
		return item.ComboSetID == comboSetID && item.Quantity > 0
	}), nil
}

func (s *ComboSetItemStore) Exists(_ context.Context, id int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.comboSetItems, func(item model.ComboSetItem) bool { return item.ID == id }) >= 0, nil
}

func (s *ComboSetItemStore) comboSetExists(id int64) bool {
	return indexOf(s.db.comboSets, func(cs model.ComboSet) bool { return cs.ID == id }) >= 0
}

func (s *ComboSetItemStore) Create(_ context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if indexOf(s.db.comboSetItems, func(row model.ComboSetItem) bool { return row.ID == item.ID }) >= 0 {
		return nil, uniqueViolation("combo_set_items", "combo_set_items_pkey")
	}
	if !s.comboSetExists(item.ComboSetID) {
		return nil, foreignKeyViolation("combo_set_items", "combo_set_items_combo_set_id_fkey")
	}

	s.db.comboSetItems = append(s.db.comboSetItems, *item)
	return ptr(*item), nil
}

func (s *ComboSetItemStore) Update(_ context.Context, item *model.ComboSetItem) (*model.ComboSetItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.comboSetItems, func(row model.ComboSetItem) bool { return row.ID == item.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if !s.comboSetExists(item.ComboSetID) {
		return nil, foreignKeyViolation("combo_set_items", "combo_set_items_combo_set_id_fkey")
	}

	s.db.comboSetItems[i] = *item
	return ptr(*item), nil
}

func (s *ComboSetItemStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.comboSetItems, func(row model.ComboSetItem) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}

	s.db.comboSetItems = append(s.db.comboSetItems[:i], s.db.comboSetItems[i+1:]...)
	return id, nil
}

type ToppingStore struct{ db *DB }

func (s *ToppingStore) List(_ context.Context) ([]model.Topping, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.toppings, func(t model.Topping) bool { return t.IsAvailable }), nil
}

func (s *ToppingStore) GetByID(_ context.Context, id int64) (*model.Topping, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.toppings, func(t model.Topping) bool { return t.ID == id && t.IsAvailable })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.toppings[i]), nil
}

func (s *ToppingStore) ListByCategory(_ context.Context, category string) ([]model.Topping, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.toppings, func(t model.Topping) bool { return t.IsAvailable && t.Category == category }), nil
}

func (s *ToppingStore) Exists(_ context.Context, name, category string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.toppings, func(t model.Topping) bool { return t.Name == name && t.Category == category }) >= 0, nil
}

func (s *ToppingStore) Create(_ context.Context, t *model.Topping) (*model.Topping, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if indexOf(s.db.toppings, func(row model.Topping) bool { return row.Name == t.Name && row.Category == t.Category }) >= 0 {
		return nil, uniqueViolation("toppings", "toppings_name_category_key")
	}

	row := *t
	row.ID = s.db.next("toppings")
	s.db.toppings = append(s.db.toppings, row)
	return ptr(row), nil
}

func (s *ToppingStore) Update(_ context.Context, t *model.Topping) (*model.Topping, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.toppings, func(row model.Topping) bool { return row.ID == t.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if indexOf(s.db.toppings, func(row model.Topping) bool {
		return row.Name == t.Name && row.Category == t.Category && row.ID != t.ID
	}) >= 0 {
		return nil, uniqueViolation("toppings", "toppings_name_category_key")
	}

	s.db.toppings[i] = *t
	return ptr(*t), nil
}

func (s *ToppingStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.toppings, func(row model.Topping) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}

	s.db.toppings = append(s.db.toppings[:i], s.db.toppings[i+1:]...)
	return id, nil
}

type PromotionStore struct{ db *DB }

func (s *PromotionStore) active(p model.Promotion) bool {
	return p.ActiveAt(s.db.Now())
}

func (s *PromotionStore) List(_ context.Context) ([]model.Promotion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	return filter(s.db.promotions, s.active), nil
}

func (s *PromotionStore) GetByID(_ context.Context, id int64) (*model.Promotion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.promotions, func(p model.Promotion) bool { return p.ID == id && s.active(p) })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	return ptr(s.db.promotions[i]), nil
}

func (s *PromotionStore) ExistsByCouponCode(_ context.Context, code string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return false, s.db.Err
	}

	return indexOf(s.db.promotions, func(p model.Promotion) bool { return p.CouponCode == code }) >= 0, nil
}

func (s *PromotionStore) Create(_ context.Context, p *model.Promotion) (*model.Promotion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	if indexOf(s.db.promotions, func(row model.Promotion) bool { return row.CouponCode == p.CouponCode }) >= 0 {
		return nil, uniqueViolation("promotions", "promotions_coupon_code_key")
	}

	row := *p
	row.ID = s.db.next("promotions")
	s.db.promotions = append(s.db.promotions, row)
	return ptr(row), nil
}

func (s *PromotionStore) Update(_ context.Context, p *model.Promotion) (*model.Promotion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return nil, s.db.Err
	}

	i := indexOf(s.db.promotions, func(row model.Promotion) bool { return row.ID == p.ID })
	if i < 0 {
		return nil, pgx.ErrNoRows
	}
	if indexOf(s.db.promotions, func(row model.Promotion) bool {
		return row.CouponCode == p.CouponCode && row.ID != p.ID
	}) >= 0 {
		return nil, uniqueViolation("promotions", "promotions_coupon_code_key")
	}

	s.db.promotions[i] = *p
	return ptr(*p), nil
}

func (s *PromotionStore) Delete(_ context.Context, id int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Err != nil {
		return 0, s.db.Err
	}

	i := indexOf(s.db.promotions, func(row model.Promotion) bool { return row.ID == id })
	if i < 0 {
		return 0, pgx.ErrNoRows
	}

	s.db.promotions = append(s.db.promotions[:i], s.db.promotions[i+1:]...)
	return id, nil
}
