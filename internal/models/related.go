package models

import (
	"github.com/gocql/gocql"
)

// Types de relation entre produits
const (
	RelationSimilar           = "similar"
	RelationFrequentlyBought  = "frequently_bought_together"
	RelationCustomersAlsoView = "customers_also_viewed"
	RelationRecentlyViewed    = "recently_viewed"
)

// RelatedLink relie un produit à un autre, typé par genre de relation
type RelatedLink struct {
	ProductID gocql.UUID `json:"product_id" db:"related_product_id"`
	Kind      string     `json:"kind" db:"kind"`
}
