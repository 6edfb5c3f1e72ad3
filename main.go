package main

import (
	"log"
	"os"

	v1 "github.com/estateregistry-api/api/v1"
	"github.com/estateregistry-api/config"
	"github.com/estateregistry-api/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize database
	database.Initialize()

	// Initialize router
	router := gin.Default()

	// CORS configuration: the client sends the session cookie, so the
	// origin must be explicit rather than a wildcard.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.GetEnv("CLIENT_URL", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// Uploaded files are served statically from the upload directory
	router.Static("/uploads", config.UploadDir())

	// API routes
	v1.RegisterRoutes(router.Group("/api"))

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 EstateRegistry API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
