package handler

import (
	"net/http"
	"os"

	"github.com/dmreilly/staffing-planner-api/pkg/auth"
	"github.com/dmreilly/staffing-planner-api/pkg/config"
	"github.com/dmreilly/staffing-planner-api/pkg/database"
	"github.com/dmreilly/staffing-planner-api/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	settingsPath := os.Getenv("SETTINGS_PATH")
	if settingsPath == "" {
		settingsPath = "config/settings.yaml"
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		panic(err)
	}

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Settings: settings}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Staffing Planner API (Vercel)",
			"version": "1.1.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/plan", h.PlanJSON)
		api.POST("/plan/csv", h.PlanCSV)
		api.POST("/validate", h.ValidatePlan)
		api.GET("/usage", h.GetMyUsage)
		api.GET("/runs", h.ListMyRuns)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
