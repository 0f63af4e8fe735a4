package router

import (
	"github.com/deppfellow/ordering-backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerCatalogRoutes registers products, combo sets, combo set items,
// toppings and promotions. Static segments such as /products/categories
// take priority over /products/:id in Echo's router.
func registerCatalogRoutes(r *echo.Echo, h *handler.Handlers) {
	products := r.Group("/products")
	products.GET("", h.Product.ListProducts)
	products.GET("/categories", h.Product.ListCategories)
	products.GET("/categories/:categoryName", h.Product.ListByCategory)
	products.GET("/:id", h.Product.GetProduct)
	products.GET("/:id/options", h.Product.ListOptions)
	products.POST("", h.Product.CreateProduct)
	products.PUT("/:id", h.Product.UpdateProduct)
	products.DELETE("/:id", h.Product.DeleteProduct)

	comboSets := r.Group("/combo-sets")
	comboSets.GET("", h.ComboSet.ListComboSets)
	comboSets.GET("/:id", h.ComboSet.GetComboSet)
	comboSets.POST("", h.ComboSet.CreateComboSet)
	comboSets.PUT("/:id", h.ComboSet.UpdateComboSet)
	comboSets.DELETE("/:id", h.ComboSet.DeleteComboSet)

	comboSetItems := r.Group("/combo-set-items")
	comboSetItems.GET("", h.ComboSetItem.ListComboSetItems)
	comboSetItems.GET("/combo/:id", h.ComboSetItem.ListByComboSet)
	comboSetItems.POST("", h.ComboSetItem.CreateComboSetItem)
	comboSetItems.PUT("/:id", h.ComboSetItem.UpdateComboSetItem)
	comboSetItems.DELETE("/:id", h.ComboSetItem.DeleteComboSetItem)

	toppings := r.Group("/toppings")
	toppings.GET("", h.Topping.ListToppings)
	toppings.GET("/category/:category", h.Topping.ListByCategory)
	toppings.GET("/:id", h.Topping.GetTopping)
	toppings.POST("", h.Topping.CreateTopping)
	toppings.PUT("/:id", h.Topping.UpdateTopping)
	toppings.DELETE("/:id", h.Topping.DeleteTopping)

	promotions := r.Group("/promotions")
	promotions.GET("", h.Promotion.ListPromotions)
	promotions.GET("/:id", h.Promotion.GetPromotion)
	promotions.POST("", h.Promotion.CreatePromotion)
	promotions.PUT("/:id", h.Promotion.UpdatePromotion)
	promotions.DELETE("/:id", h.Promotion.DeletePromotion)
}
