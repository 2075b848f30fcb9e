package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/engraveworks/engraving-api/routes"
	"github.com/engraveworks/engraving-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store
	s := initStore()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore connects to MongoDB, or falls back to the unavailable
// store so the server still comes up and reports its state.
func initStore() store.Store {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Println("⚠️ DATABASE_URL not set, store-backed endpoints will fail")
		return store.NewUnavailable()
	}

	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "engraving_shop"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.Connect(ctx, uri, dbName)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	log.Printf("✅ Connected to database %s", dbName)
	return s
}
