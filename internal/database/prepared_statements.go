package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

var (
	// Prepared statements pour le chemin de lecture catalogue
	stmtGetProductByID       *gocql.Query
	stmtGetVariantsByProduct *gocql.Query
	stmtGetReviewsByProduct  *gocql.Query
	stmtGetRelatedByProduct  *gocql.Query

	preparedOnce sync.Once
)

// InitPreparedStatements initialise les prepared statements
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		session, err := GetCatalogSession()
		if err != nil {
			log.Printf("⚠️ Impossible d'initialiser les prepared statements: %v", err)
			return
		}

		// Fiche produit complète
		stmtGetProductByID = session.Query(`SELECT product_id, sku, slug, name, short_description, description,
			price, cost, discount_percent, discount_fixed, discount_start, discount_end, tax_rate, tax_included,
			stock, low_stock_threshold, stock_status, weight, width_mm, height_mm, depth_mm, shipping_class,
			warranty_info, return_policy, is_new, is_featured, is_trending, is_bestseller, is_limited_edition,
			is_exclusive, is_eco_friendly, category_id, sub_category_id, child_sub_category_id, brand_id,
			supplier_id, country_code, tags, created_at, updated_at, created_by, updated_by
			FROM products WHERE product_id = ?`)

		// Variantes actives d'un produit
		stmtGetVariantsByProduct = session.Query(`SELECT id, product_id, sku, attributes, regular_price, sale_price,
			stock_quantity, stock_status, photo_path, width_mm, height_mm, depth_mm
			FROM product_variants WHERE product_id = ? AND is_active = true`)

		// Avis approuvés d'un produit
		stmtGetReviewsByProduct = session.Query(`SELECT review_id, user_id, user_name, rating, comment,
			is_verified_purchase, is_recommended, created_at
			FROM reviews_by_product WHERE product_id = ? AND is_approved = true`)

		// Liens produits par type de relation
		stmtGetRelatedByProduct = session.Query(`SELECT related_product_id, kind
			FROM related_products WHERE product_id = ?`)

		log.Println("✅ Prepared statements initialisés")
	})
}

func GetPreparedGetProductByID() *gocql.Query {
	return stmtGetProductByID
}

func GetPreparedGetVariantsByProduct() *gocql.Query {
	return stmtGetVariantsByProduct
}

func GetPreparedGetReviewsByProduct() *gocql.Query {
	return stmtGetReviewsByProduct
}

func GetPreparedGetRelatedByProduct() *gocql.Query {
	return stmtGetRelatedByProduct
}
