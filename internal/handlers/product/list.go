package product

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/services"
)

// ProductCard est la vue allégée d'un produit pour les listes vitrine
type ProductCard struct {
	ID             string  `json:"id"`
	SKU            string  `json:"sku"`
	Slug           string  `json:"slug"`
	Name           string  `json:"name"`
	BasePrice      float64 `json:"base_price"`
	FinalPrice     float64 `json:"final_price"`
	DiscountActive bool    `json:"discount_active"`
	StockStatus    string  `json:"stock_status"`
	IsNew          bool    `json:"is_new"`
}

func GetAllProducts(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "products:cards"

	// ✅ Vérifie le cache Redis
	if val, err := database.Redis.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []ProductCard
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	cards, err := loadProductCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	// ✅ Met en cache
	if data, err := json.Marshal(cards); err == nil {
		database.Redis.Set(ctx, cacheKey, data, time.Hour)
	}

	c.JSON(http.StatusOK, cards)
}

func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	// 🔎 1️⃣ Recherche dans Elasticsearch (prioritaire)
	results, err := services.SearchSnapshots(query)
	if err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	// 🔁 2️⃣ Fallback ScyllaDB si ES vide (scan complet - non optimal pour production)
	cards, err := loadProductCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche: " + err.Error()})
		return
	}

	// Note: ScyllaDB ne supporte pas les recherches LIKE/regex natives,
	// on filtre en mémoire sur le nom
	filtered := make([]ProductCard, 0)
	for _, card := range cards {
		if containsIgnoreCase(card.Name, query) {
			filtered = append(filtered, card)
		}
	}

	c.JSON(http.StatusOK, filtered)
}

// loadProductCards scanne la table produits et dérive les prix effectifs
func loadProductCards() ([]ProductCard, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, sku, slug, name, price, discount_percent, discount_fixed,
		discount_start, discount_end, stock_status, created_at FROM products`).Iter()

	now := clock.Now()
	cards := []ProductCard{}

	var (
		id                             gocql.UUID
		sku, slug, name, stockStatus   string
		price                          float64
		discountPercent, discountFixed *float64
		discountStart, discountEnd     *time.Time
		createdAt                      time.Time
	)

	for iter.Scan(&id, &sku, &slug, &name, &price, &discountPercent, &discountFixed,
		&discountStart, &discountEnd, &stockStatus, &createdAt) {
		info := catalog.ComputeEffectivePrice(price, discountPercent, discountFixed, discountStart, discountEnd, now)
		cards = append(cards, ProductCard{
			ID:             id.String(),
			SKU:            sku,
			Slug:           slug,
			Name:           name,
			BasePrice:      price,
			FinalPrice:     info.FinalPrice,
			DiscountActive: info.IsActive,
			StockStatus:    stockStatus,
			IsNew:          catalog.IsFreshlyListed(createdAt, now, catalog.FreshnessWindowDays),
		})
		discountPercent, discountFixed = nil, nil
		discountStart, discountEnd = nil, nil
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	return cards, nil
}

// Helper pour recherche insensible à la casse
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
