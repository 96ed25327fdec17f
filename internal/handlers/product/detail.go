package product

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"vitrine_back_end/internal/cache"
	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/loader"
	"vitrine_back_end/internal/services"
)

// Horloge injectable pour les tests
var clock catalog.Clock = catalog.SystemClock{}

// 🔹 Snapshot produit complet : agrégat hydraté + assemblage + cache Redis
func GetProductSnapshot(c *gin.Context) {
	productID := c.Param("id")

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	// ✅ Vérifie le cache Redis
	if cached := cache.GetSnapshotFromCache(productID); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	// ✅ Hydrate l'agrégat complet depuis ScyllaDB
	aggregate, err := loader.LoadProduct(gocql.UUID(productUUID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	// ✅ Assemble le snapshot (URLs signées MinIO valables 24h)
	ctx := context.Background()
	assembler := catalog.NewAssembler(services.MediaResolver(ctx))
	snapshot := assembler.Assemble(aggregate, clock.Now())

	// ✅ Met en cache et indexe
	cache.PutSnapshotInCache(productID, snapshot)
	go services.IndexSnapshot(snapshot)

	c.JSON(http.StatusOK, snapshot)
}
