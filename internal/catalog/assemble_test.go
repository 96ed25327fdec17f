package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/models"
)

func testResolver(path string) string {
	return "https://cdn.test/" + path
}

func buildTestProduct(now time.Time) *models.Product {
	updated := now.AddDate(0, 0, -2)
	return &models.Product{
		ID:               mustUUID("a0000000-0000-0000-0000-000000000001"),
		SKU:              "SKU-001",
		Slug:             "chaise-design",
		Name:             "Chaise design",
		ShortDescription: "Une chaise confortable",
		Description:      "Description longue de la chaise",
		Price:            200,
		Cost:             120,
		DiscountPercent:  floatPtr(10),
		DiscountStart:    timePtr(now.AddDate(0, 0, -1)),
		DiscountEnd:      timePtr(now.AddDate(0, 0, 6)),
		TaxRate:          21,
		Stock:            4,
		StockStatus:      models.StockStatusInStock,
		Weight:           7.5,
		WarrantyInfo:     "2 ans",
		ReturnPolicy:     "30 jours",
		IsFeatured:       true,
		CreatedAt:        now.AddDate(0, 0, -10),
		UpdatedAt:        &updated,
		CreatedBy:        "admin",
		Category: &models.Category{
			ID: mustUUID("b0000000-0000-0000-0000-000000000001"), Name: "Mobilier", Slug: "mobilier",
		},
		SubCategory: &models.Category{
			ID: mustUUID("b0000000-0000-0000-0000-000000000002"), Name: "Chaises", Slug: "chaises",
		},
		Brand: &models.Brand{
			ID: mustUUID("c0000000-0000-0000-0000-000000000001"), Name: "Nordika", Slug: "nordika", LogoPath: "brands/nordika.png",
		},
		Supplier: &models.Supplier{
			ID: mustUUID("d0000000-0000-0000-0000-000000000001"), Name: "Meubles SA",
		},
		Country: &models.Country{Code: "BE", Name: "Belgique"},
		Tags:    []string{"design", "bois"},
		Variants: []models.ProductVariant{
			{
				ID:            mustUUID("e0000000-0000-0000-0000-000000000001"),
				SKU:           "SKU-001-N",
				Attributes:    map[string]string{"couleur": "noir"},
				RegularPrice:  200,
				StockQuantity: 2,
				StockStatus:   models.StockStatusInStock,
			},
			{
				ID:            mustUUID("e0000000-0000-0000-0000-000000000002"),
				SKU:           "SKU-001-B",
				Attributes:    map[string]string{"couleur": "blanc"},
				RegularPrice:  220,
				SalePrice:     floatPtr(180),
				StockQuantity: 2,
				StockStatus:   models.StockStatusInStock,
			},
		},
		Reviews: []models.Review{
			{ID: mustUUID("f0000000-0000-0000-0000-000000000001"), UserName: "Alice", Rating: 5, IsVerifiedPurchase: true, IsRecommended: true, CreatedAt: now.AddDate(0, 0, -3)},
			{ID: mustUUID("f0000000-0000-0000-0000-000000000002"), UserName: "Bob", Rating: 3, CreatedAt: now.AddDate(0, 0, -1)},
		},
		Analytics:    &models.ProductAnalytics{Views: 150, Sales: 12, WishlistCount: 8, CartCount: 3},
		PrimaryPhoto: &models.MediaItem{Path: "products/chaise.jpg", ThumbnailPath: "products/chaise_thumb.jpg", Alt: "Chaise", Width: 800, Height: 600},
		Gallery: []models.MediaItem{
			{Path: "products/chaise_2.jpg", Alt: "Vue de côté"},
		},
		Specifications: []models.SpecificationGroup{
			{Group: "Dimensions", Items: []models.SpecificationItem{{Name: "Hauteur", Value: "90 cm"}}},
		},
		FAQs: []models.ProductFAQ{
			{ID: mustUUID("10000000-0000-0000-0000-000000000001"), Question: "Montage requis ?", Answer: "Oui, 15 minutes"},
		},
		Related: []models.RelatedLink{
			{ProductID: mustUUID("20000000-0000-0000-0000-000000000001"), Kind: models.RelationSimilar},
			{ProductID: mustUUID("20000000-0000-0000-0000-000000000002"), Kind: models.RelationFrequentlyBought},
			{ProductID: mustUUID("20000000-0000-0000-0000-000000000003"), Kind: models.RelationSimilar},
		},
		SEO: &models.SEOMeta{MetaTitle: "Chaise design Nordika"},
	}
}

func mustUUID(s string) gocql.UUID {
	u, err := gocql.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

func TestAssemble(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	assembler := NewAssembler(testResolver)
	snapshot := assembler.Assemble(buildTestProduct(now), now)

	// Identité
	assert.Equal(t, "a0000000-0000-0000-0000-000000000001", snapshot.Identity.ID)
	assert.Equal(t, "chaise-design", snapshot.Identity.Slug)

	// Tarification : 10% actif sur 200
	assert.True(t, snapshot.Pricing.DiscountActive)
	assert.Equal(t, 180.0, snapshot.Pricing.FinalPrice)
	assert.Equal(t, 20.0, snapshot.Pricing.DiscountAmount)
	require.NotNil(t, snapshot.Pricing.DiscountDaysLeft)
	assert.Equal(t, 6, *snapshot.Pricing.DiscountDaysLeft)
	assert.Equal(t, 60.0, snapshot.Pricing.Profit.Amount)
	assert.Equal(t, 33.33, snapshot.Pricing.Profit.Percentage)
	assert.Equal(t, 37.8, snapshot.Pricing.TaxAmount)
	require.NotNil(t, snapshot.Pricing.VariantPriceRange)
	assert.Equal(t, 180.0, snapshot.Pricing.VariantPriceRange.Min)
	assert.Equal(t, 200.0, snapshot.Pricing.VariantPriceRange.Max)

	// Inventaire : seuil par défaut appliqué, 4 ≤ 10
	assert.Equal(t, models.DefaultLowStockThreshold, snapshot.Inventory.LowStockThreshold)
	assert.True(t, snapshot.Inventory.IsLowStock)

	// Catégorisation avec profondeur
	require.NotNil(t, snapshot.Categorization.Category)
	assert.Equal(t, 0, snapshot.Categorization.Category.Depth)
	require.NotNil(t, snapshot.Categorization.SubCategory)
	assert.Equal(t, 1, snapshot.Categorization.SubCategory.Depth)
	assert.Nil(t, snapshot.Categorization.ChildSubCategory)

	// Marque avec logo résolu
	require.NotNil(t, snapshot.Brand)
	assert.Equal(t, "https://cdn.test/brands/nordika.png", snapshot.Brand.LogoURL)

	// Spécifications groupées, ordre conservé
	require.Len(t, snapshot.Specifications, 1)
	assert.Equal(t, "Dimensions", snapshot.Specifications[0].Group)
	assert.Equal(t, "90 cm", snapshot.Specifications[0].Items[0].Value)

	// Avis
	assert.Equal(t, 4.0, snapshot.Reviews.Summary.Average)
	assert.Equal(t, 2, snapshot.Reviews.Summary.Count)
	assert.Len(t, snapshot.Reviews.Items, 2)

	// Badges : créé il y a 10 jours → nouveau, promo active → en solde
	assert.True(t, snapshot.Badges.IsNew)
	assert.True(t, snapshot.Badges.IsOnSale)
	assert.True(t, snapshot.Badges.IsFeatured)
	assert.False(t, snapshot.Badges.IsTrending)

	// SEO : titre explicite, descriptions en repli
	assert.Equal(t, "Chaise design Nordika", snapshot.SEO.Title)
	assert.Equal(t, "Une chaise confortable", snapshot.SEO.Description)
	assert.Equal(t, "Chaise design Nordika", snapshot.SEO.OGTitle)
	assert.Equal(t, "https://cdn.test/products/chaise.jpg", snapshot.SEO.OGImageURL)

	// Produits liés par type de relation
	assert.Equal(t, []string{
		"20000000-0000-0000-0000-000000000001",
		"20000000-0000-0000-0000-000000000003",
	}, snapshot.RelatedProducts.Similar)
	assert.Len(t, snapshot.RelatedProducts.FrequentlyBoughtTogether, 1)
	assert.Empty(t, snapshot.RelatedProducts.RecentlyViewed)

	// Fournisseur avec pays
	require.NotNil(t, snapshot.Supplier)
	assert.Equal(t, "Belgique", snapshot.Supplier.Country)

	// Analytics
	assert.Equal(t, 150, snapshot.Analytics.Views)
}

func TestAssemble_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	assembler := NewAssembler(testResolver)
	product := buildTestProduct(now)

	first, err := json.Marshal(assembler.Assemble(product, now))
	require.NoError(t, err)
	second, err := json.Marshal(assembler.Assemble(product, now))
	require.NoError(t, err)

	assert.Equal(t, first, second, "deux assemblages identiques doivent produire le même JSON")
}

func TestAssemble_ProduitNilPanique(t *testing.T) {
	assembler := NewAssembler(nil)
	assert.Panics(t, func() {
		assembler.Assemble(nil, time.Now())
	})
}

func TestAssemble_AgregatMinimal(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	assembler := NewAssembler(nil)

	product := &models.Product{
		ID:        mustUUID("a0000000-0000-0000-0000-000000000099"),
		Name:      "Produit nu",
		CreatedAt: now.AddDate(0, -6, 0),
	}
	snapshot := assembler.Assemble(product, now)

	// Tout dégrade en valeurs zéro, jamais de nil sur les collections
	assert.Nil(t, snapshot.Brand)
	assert.Nil(t, snapshot.Supplier)
	assert.NotNil(t, snapshot.Categorization.Tags)
	assert.Empty(t, snapshot.Variations)
	assert.Empty(t, snapshot.Media.Gallery)
	assert.Empty(t, snapshot.FAQs)
	assert.Equal(t, 0, snapshot.Reviews.Summary.Count)
	assert.Nil(t, snapshot.Pricing.VariantPriceRange)
	assert.False(t, snapshot.Badges.IsNew, "créé il y a six mois, plus nouveau")
	assert.False(t, snapshot.Badges.IsOnSale)
	assert.Equal(t, "Produit nu", snapshot.SEO.Title, "repli sur le nom du produit")
	assert.Equal(t, "", snapshot.SEO.Description)
	assert.Equal(t, 0, snapshot.Analytics.Views)
}

func TestAssemble_IsNewEcraseLeFlagStocke(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	assembler := NewAssembler(nil)

	product := &models.Product{
		ID:        mustUUID("a0000000-0000-0000-0000-000000000042"),
		Name:      "Vieux produit",
		IsNew:     true, // flag stocké obsolète
		CreatedAt: now.AddDate(-1, 0, 0),
	}
	snapshot := assembler.Assemble(product, now)

	assert.False(t, snapshot.Badges.IsNew)
}
