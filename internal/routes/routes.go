package routes

import (
	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/handlers/product"
	"vitrine_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Vitrine produits
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/search", middleware.SearchRateLimit(), product.SearchProducts)
	api.GET("/products/:id/full", middleware.SnapshotRateLimit(), product.GetProductSnapshot)
	api.GET("/products/:id/reviews", product.GetProductReviews)
	api.GET("/products/:id/variants", product.GetProductVariants)
	api.GET("/variants/sku/:sku", product.GetVariantBySKU)
}
