package main

import (
	"fmt"
	"log"
	"os"

	"chiller-sim/internal/api/handlers"
	"chiller-sim/internal/api/middleware"
	"chiller-sim/internal/api/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler()
	sweepHandler := handlers.NewSweepHandler()
	profileHandler := handlers.NewProfileHandler()
	liveHandler := ws.NewHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareGains)
		api.GET("/simulate/live", func(c *gin.Context) {
			liveHandler.ServeHTTP(c.Writer, c.Request)
		})

		api.GET("/sweep", sweepHandler.SweepGains)
		api.GET("/profiles", profileHandler.ListProfiles)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
