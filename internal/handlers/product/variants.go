package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/models"
)

// GetProductVariants récupère les variantes actives d'un produit avec
// l'étendue de prix effectifs
func GetProductVariants(c *gin.Context) {
	productIDStr := c.Param("id")

	productID, err := gocql.ParseUUID(productIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	query := `SELECT id, product_id, sku, attributes, regular_price, sale_price, stock_quantity, stock_status,
			  width_mm, height_mm, depth_mm
			  FROM product_variants WHERE product_id = ? AND is_active = true`

	iter := session.Query(query, productID).Iter()

	variants := []models.ProductVariant{}
	var variant models.ProductVariant

	for iter.Scan(&variant.ID, &variant.ProductID, &variant.SKU, &variant.Attributes,
		&variant.RegularPrice, &variant.SalePrice, &variant.StockQuantity, &variant.StockStatus,
		&variant.WidthMM, &variant.HeightMM, &variant.DepthMM) {
		variants = append(variants, variant)
		variant = models.ProductVariant{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"variants":    variants,
		"total":       len(variants),
		"price_range": catalog.ComputeVariantPriceRange(variants),
	})
}

// GetVariantBySKU récupère une variante par SKU
func GetVariantBySKU(c *gin.Context) {
	sku := c.Param("sku")

	var variant models.ProductVariant
	query := `SELECT id, product_id, sku, attributes, regular_price, sale_price, stock_quantity, stock_status,
			  width_mm, height_mm, depth_mm
			  FROM product_variants WHERE sku = ? AND is_active = true LIMIT 1`

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(query, sku).Scan(
		&variant.ID, &variant.ProductID, &variant.SKU, &variant.Attributes,
		&variant.RegularPrice, &variant.SalePrice, &variant.StockQuantity, &variant.StockStatus,
		&variant.WidthMM, &variant.HeightMM, &variant.DepthMM,
	); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variante non trouvée"})
		return
	}

	c.JSON(http.StatusOK, variant)
}
