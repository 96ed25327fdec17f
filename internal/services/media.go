package services

import (
	"context"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/database"
)

// Durée de validité des URLs signées servies dans les snapshots
const SignedURLDuration = 24 * time.Hour

// GenerateSignedURL génère une URL signée MinIO pour un chemin objet.
// Accepte aussi bien un chemin relatif au bucket qu'une URL complète
// héritée d'anciennes fiches produit.
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	reqParams := make(url.Values)

	bucket := os.Getenv("MINIO_BUCKET")

	// Nettoie l'URL complète pour ne garder que le chemin relatif au bucket
	key := objectPath
	if idx := strings.Index(objectPath, "/"+bucket+"/"); idx != -1 {
		key = objectPath[idx+len(bucket)+2:]
	}

	presignedURL, err := database.MinioClient.PresignedGetObject(
		ctx,
		bucket,
		key,
		duration,
		reqParams,
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

// MediaResolver retourne le resolver injecté dans l'assembleur de
// snapshots : chemin objet → URL signée. Les échecs dégradent en
// chaîne vide, le snapshot reste servable sans ses images.
func MediaResolver(ctx context.Context) catalog.MediaResolver {
	return func(path string) string {
		if path == "" {
			return ""
		}
		signed, err := GenerateSignedURL(ctx, path, SignedURLDuration)
		if err != nil {
			log.Printf("⚠️ Signature URL impossible pour %s: %v", path, err)
			return ""
		}
		return signed
	}
}
