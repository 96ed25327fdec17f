package cache

import (
	"context"
	"encoding/json"
	"time"

	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/database"
)

const (
	SnapshotCacheTTL = 10 * time.Minute
)

// GetSnapshotFromCache récupère un snapshot assemblé depuis Redis.
// Retourne nil quand il n'est pas (ou plus) en cache.
func GetSnapshotFromCache(productID string) *catalog.ProductSnapshot {
	ctx := context.Background()
	key := "snapshot:" + productID

	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil {
		return nil
	}

	var snapshot catalog.ProductSnapshot
	if json.Unmarshal([]byte(data), &snapshot) != nil {
		return nil
	}
	return &snapshot
}

// PutSnapshotInCache met un snapshot assemblé en cache.
// Le TTL court borne la dérive des fenêtres de promotion : un prix
// soldé expiré disparaît au plus tard 10 minutes après la fin de fenêtre.
func PutSnapshotInCache(productID string, snapshot *catalog.ProductSnapshot) {
	ctx := context.Background()
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, "snapshot:"+productID, data, SnapshotCacheTTL)
}

// InvalidateSnapshotCache invalide le snapshot d'un produit
func InvalidateSnapshotCache(productID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "snapshot:"+productID)
}
