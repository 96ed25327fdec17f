package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/models"
)

func TestComputeProfitMargin(t *testing.T) {
	tests := []struct {
		name       string
		finalPrice float64
		cost       float64
		wantAmount float64
		wantPct    float64
	}{
		{"marge positive", 100, 60, 40, 40},
		{"marge négative", 50, 80, -30, -60},
		{"prix nul, pourcentage gardé à zéro", 0, 50, -50, 0},
		{"arrondi à deux décimales", 30, 20, 10, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin := ComputeProfitMargin(tt.finalPrice, tt.cost)
			assert.Equal(t, tt.wantAmount, margin.Amount)
			assert.Equal(t, tt.wantPct, margin.Percentage)
		})
	}
}

func TestComputeTaxAmount(t *testing.T) {
	assert.Equal(t, 21.0, ComputeTaxAmount(100, 21, false))
	assert.Equal(t, 0.0, ComputeTaxAmount(100, 21, true), "taxe comprise dans le prix")
	assert.Equal(t, 0.0, ComputeTaxAmount(0, 21, false))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, IsLowStock(5, 10))
	assert.True(t, IsLowStock(10, 10), "le seuil exact compte comme stock faible")
	assert.False(t, IsLowStock(11, 10))
	assert.True(t, IsLowStock(0, 10))
}

func TestIsFreshlyListed(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsFreshlyListed(now.AddDate(0, 0, -30), now, FreshnessWindowDays), "créé il y a exactement 30 jours")
	assert.False(t, IsFreshlyListed(now.AddDate(0, 0, -31), now, FreshnessWindowDays), "créé il y a 31 jours")
	assert.True(t, IsFreshlyListed(now, now, FreshnessWindowDays))
}

func TestComputeRatingSummary_SansAvis(t *testing.T) {
	summary := ComputeRatingSummary(nil)

	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, summary.Distribution)
	assert.Equal(t, 0.0, summary.VerifiedPct)
	assert.Equal(t, 0.0, summary.RecommendedPct)
}

func TestComputeRatingSummary(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5, IsVerifiedPurchase: true, IsRecommended: true},
		{Rating: 1, IsVerifiedPurchase: false, IsRecommended: false},
	}

	summary := ComputeRatingSummary(reviews)

	assert.Equal(t, 3.0, summary.Average)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 0, 4: 0, 5: 1}, summary.Distribution)
	assert.Equal(t, 50.0, summary.VerifiedPct)
	assert.Equal(t, 50.0, summary.RecommendedPct)
}

func TestComputeVariantPriceRange(t *testing.T) {
	t.Run("sans variante", func(t *testing.T) {
		assert.Nil(t, ComputeVariantPriceRange(nil))
		assert.Nil(t, ComputeVariantPriceRange([]models.ProductVariant{}))
	})

	t.Run("sale_price prime sur regular_price", func(t *testing.T) {
		variants := []models.ProductVariant{
			{RegularPrice: 100},
			{RegularPrice: 120, SalePrice: floatPtr(80)},
		}
		rng := ComputeVariantPriceRange(variants)
		require.NotNil(t, rng)
		assert.Equal(t, 80.0, rng.Min)
		assert.Equal(t, 100.0, rng.Max)
	})

	t.Run("valeurs non positives filtrées", func(t *testing.T) {
		variants := []models.ProductVariant{
			{RegularPrice: 0},
			{RegularPrice: -5},
			{RegularPrice: 100, SalePrice: floatPtr(0)},
		}
		assert.Nil(t, ComputeVariantPriceRange(variants), "un sale_price à zéro écrase le regular_price")
	})

	t.Run("variante unique", func(t *testing.T) {
		rng := ComputeVariantPriceRange([]models.ProductVariant{{RegularPrice: 42}})
		require.NotNil(t, rng)
		assert.Equal(t, 42.0, rng.Min)
		assert.Equal(t, 42.0, rng.Max)
	})
}
