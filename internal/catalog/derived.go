package catalog

import (
	"math"
	"time"

	"vitrine_back_end/internal/models"
)

// Fenêtre pendant laquelle un produit est considéré comme nouveau
const FreshnessWindowDays = 30

// ProfitMargin est la marge calculée sur le prix de vente effectif
type ProfitMargin struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// RatingSummary agrège les avis approuvés d'un produit
type RatingSummary struct {
	Average        float64     `json:"average"`
	Count          int         `json:"count"`
	Distribution   map[int]int `json:"distribution"`
	VerifiedPct    float64     `json:"verified_pct"`
	RecommendedPct float64     `json:"recommended_pct"`
}

// PriceRange est l'étendue des prix effectifs des variantes
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComputeProfitMargin calcule la marge sur un prix de vente.
// Le pourcentage est arrondi à 2 décimales et vaut 0 quand le prix
// de vente est nul (pas de division par zéro).
func ComputeProfitMargin(finalPrice, cost float64) ProfitMargin {
	margin := ProfitMargin{Amount: finalPrice - cost}
	if finalPrice > 0 {
		margin.Percentage = math.Round(margin.Amount/finalPrice*100*100) / 100
	}
	return margin
}

// ComputeTaxAmount retourne le montant de taxe à afficher.
// Zéro quand la taxe est déjà comprise dans le prix.
func ComputeTaxAmount(finalPrice, taxRate float64, taxIncluded bool) float64 {
	if taxIncluded {
		return 0
	}
	return finalPrice * taxRate / 100
}

// IsLowStock indique si le stock est au niveau ou sous le seuil d'alerte
func IsLowStock(stockQuantity, threshold int) bool {
	return stockQuantity <= threshold
}

// IsFreshlyListed indique si le produit a été créé il y a au plus
// windowDays jours (borne incluse : créé il y a exactement 30 jours
// reste "nouveau")
func IsFreshlyListed(createdAt, now time.Time, windowDays int) bool {
	return now.Sub(createdAt) <= time.Duration(windowDays)*24*time.Hour
}

// ComputeRatingSummary agrège les avis d'un produit. Sans avis, tout
// vaut zéro (jamais null) et la distribution porte les 5 étoiles à 0.
func ComputeRatingSummary(reviews []models.Review) RatingSummary {
	summary := RatingSummary{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	var total, verified, recommended int
	for _, review := range reviews {
		summary.Count++
		total += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			summary.Distribution[review.Rating]++
		}
		if review.IsVerifiedPurchase {
			verified++
		}
		if review.IsRecommended {
			recommended++
		}
	}

	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
		summary.VerifiedPct = float64(verified) / float64(summary.Count) * 100
		summary.RecommendedPct = float64(recommended) / float64(summary.Count) * 100
	}

	return summary
}

// ComputeVariantPriceRange calcule le min/max des prix effectifs des
// variantes. Prix effectif = sale_price si présent, sinon regular_price.
// Les valeurs non positives sont ignorées. Retourne nil quand aucune
// variante ne donne un prix exploitable.
func ComputeVariantPriceRange(variants []models.ProductVariant) *PriceRange {
	var prices []float64
	for _, variant := range variants {
		price := variant.RegularPrice
		if variant.SalePrice != nil {
			price = *variant.SalePrice
		}
		if price > 0 {
			prices = append(prices, price)
		}
	}

	if len(prices) == 0 {
		return nil
	}

	rng := PriceRange{Min: prices[0], Max: prices[0]}
	for _, price := range prices[1:] {
		if price < rng.Min {
			rng.Min = price
		}
		if price > rng.Max {
			rng.Max = price
		}
	}
	return &rng
}
