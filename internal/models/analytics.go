package models

// ProductAnalytics porte les compteurs agrégés d'un produit,
// alimentés par un job externe
type ProductAnalytics struct {
	Views         int `json:"views"`
	Sales         int `json:"sales"`
	WishlistCount int `json:"wishlist_count"`
	CartCount     int `json:"cart_count"`
}
