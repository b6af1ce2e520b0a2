package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"foodie-backend/config"
	"foodie-backend/handlers"
	"foodie-backend/middleware"
	"foodie-backend/routes"
	"foodie-backend/storage"
)

func main() {
	// Set Gin mode
	if mode := os.Getenv("GIN_MODE"); mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := storage.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := client.Database(cfg.MongoDB)
	if err := storage.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}
	log.Println("MongoDB connected")

	h := handlers.New(
		storage.NewMongoUserStore(db),
		storage.NewMongoRestaurantStore(db),
		cfg.JWTSecret,
		cfg.TokenTTL,
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Foodie Backend API",
		})
	})

	routes.SetupRoutes(r, h)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
