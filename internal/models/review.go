package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Review est un avis approuvé sur un produit. Seuls les avis approuvés
// sont chargés dans l'agrégat et comptés dans les moyennes.
type Review struct {
	ID                 gocql.UUID `json:"id" db:"review_id"`
	ProductID          gocql.UUID `json:"product_id" db:"product_id"`
	UserID             string     `json:"user_id" db:"user_id"`
	UserName           string     `json:"user_name" db:"user_name"`
	Rating             int        `json:"rating" db:"rating"` // 1-5
	Comment            string     `json:"comment" db:"comment"`
	IsVerifiedPurchase bool       `json:"is_verified_purchase" db:"is_verified_purchase"`
	IsRecommended      bool       `json:"is_recommended" db:"is_recommended"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
}
