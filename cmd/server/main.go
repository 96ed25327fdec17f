package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/config"
	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Initialiser les prepared statements pour améliorer les performances
	database.InitPreparedStatements()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	r := gin.Default()
	r.Use(corsMiddleware())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Vitrine lancé sur le port", port)
	r.Run(":" + port)
}

func corsMiddleware() gin.HandlerFunc {
	allowed := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowed == "" {
		allowed = "http://localhost:3000"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(allowed, ",")
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"}

	return cors.New(cfg)
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	// Faire un ping pour établir la connexion
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}
