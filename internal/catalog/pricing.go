package catalog

import "time"

// PriceInfo est le résultat du calcul de prix effectif
type PriceInfo struct {
	FinalPrice     float64 `json:"final_price"`
	DiscountAmount float64 `json:"discount_amount"`
	IsActive       bool    `json:"is_active"`
	RemainingDays  *int    `json:"remaining_days,omitempty"`
}

// ComputeEffectivePrice calcule le prix de vente effectif d'un produit.
//
// La promotion est active ssi les deux bornes de la fenêtre sont présentes
// et que now tombe dans [start, end] (bornes incluses). Le montant fixe
// prime sur le pourcentage quand les deux sont renseignés et positifs.
// Le prix final est borné à 0 : un montant fixe supérieur au prix de base
// ne produit jamais de prix négatif.
func ComputeEffectivePrice(basePrice float64, discountPercent, discountFixed *float64, windowStart, windowEnd *time.Time, now time.Time) PriceInfo {
	info := PriceInfo{FinalPrice: basePrice}

	if windowStart == nil || windowEnd == nil {
		return info
	}
	if now.Before(*windowStart) || now.After(*windowEnd) {
		return info
	}

	info.IsActive = true

	switch {
	case discountFixed != nil && *discountFixed > 0:
		info.DiscountAmount = *discountFixed
	case discountPercent != nil && *discountPercent > 0:
		info.DiscountAmount = basePrice * *discountPercent / 100
	}

	info.FinalPrice = basePrice - info.DiscountAmount
	if info.FinalPrice < 0 {
		info.FinalPrice = 0
	}

	// Jours restants uniquement quand la fin de fenêtre est strictement future
	if windowEnd.After(now) {
		days := int(windowEnd.Sub(now).Hours() / 24)
		info.RemainingDays = &days
	}

	return info
}
