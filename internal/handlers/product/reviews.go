package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/models"
)

// GetProductReviews récupère les avis approuvés d'un produit avec le
// même résumé de notes que celui porté par le snapshot
func GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	productUUID, err := gocql.ParseUUID(productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`
		SELECT review_id, user_id, user_name, rating, comment, is_verified_purchase, is_recommended, created_at
		FROM reviews_by_product WHERE product_id = ? AND is_approved = true
	`, productUUID).Iter()

	reviews := []models.Review{}
	var review models.Review

	for iter.Scan(&review.ID, &review.UserID, &review.UserName, &review.Rating, &review.Comment,
		&review.IsVerifiedPurchase, &review.IsRecommended, &review.CreatedAt) {
		review.ProductID = productUUID
		reviews = append(reviews, review)
		review = models.Review{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"summary": catalog.ComputeRatingSummary(reviews),
	})
}
