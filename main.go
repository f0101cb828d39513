package main

import (
	"log/slog"
	"net/http"
	"os"

	"meal-planner-api/config"
	"meal-planner-api/logging"
	"meal-planner-api/routes"
	"meal-planner-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	logging.Setup()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Open the table store and seed default data
	if err := store.Open(config.DBPath()); err != nil {
		slog.Error("failed to open store", "err", err)
		os.Exit(1)
	}
	if err := store.EnsureInitialized(); err != nil {
		slog.Error("failed to seed store", "err", err)
		os.Exit(1)
	}
	slog.Info("store ready", "path", config.DBPath())

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Meal Planner API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🥗 Welcome to the Meal Planner API",
			"health":  "/health",
			"roles":   []string{"admin", "customer"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := config.Port()
	slog.Info("server running", "addr", "http://localhost:"+port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
