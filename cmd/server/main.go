package main

import (
	"log"
	"net/http"
	"os"

	"github.com/dmreilly/staffing-planner-api/pkg/auth"
	"github.com/dmreilly/staffing-planner-api/pkg/config"
	"github.com/dmreilly/staffing-planner-api/pkg/database"
	"github.com/dmreilly/staffing-planner-api/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	settingsPath := os.Getenv("SETTINGS_PATH")
	if settingsPath == "" {
		settingsPath = "config/settings.yaml"
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("could not load settings: %v", err)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Settings: settings}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Staffing Planner API",
			"version": "1.1.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Planner Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/plan", h.PlanJSON)
		api.POST("/plan/csv", h.PlanCSV)
		api.POST("/validate", h.ValidatePlan)
		api.GET("/usage", h.GetMyUsage)
		api.GET("/runs", h.ListMyRuns)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
