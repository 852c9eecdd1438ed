package handlers

import (
	"net/http"
	"time"

	"github.com/dmreilly/staffing-planner-api/pkg/auth"
	"github.com/dmreilly/staffing-planner-api/pkg/config"
	"github.com/dmreilly/staffing-planner-api/pkg/database"
	"github.com/dmreilly/staffing-planner-api/pkg/models"
	"github.com/dmreilly/staffing-planner-api/pkg/planner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB       *gorm.DB
	Settings *config.Settings
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for planner routes using HMAC
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		userID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create API key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      userID,
			RateLimit: 10000,
		})

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// PlanJSON runs the full staffing pipeline over a JSON input snapshot
func (h *Handler) PlanJSON(c *gin.Context) {
	var input models.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.runPlan(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(input.Census), len(input.Ratios))
	h.RecordRun(c, result)

	c.JSON(http.StatusOK, result)
}

// runPlan resolves season rules (request-supplied first, settings file as
// fallback) and executes the pipeline
func (h *Handler) runPlan(input models.PlanInput) (*models.PlanResult, error) {
	rules := input.SeasonRules
	if len(rules) == 0 {
		rules = h.Settings.Seasons
	}

	p, err := planner.NewPipeline(rules, h.Settings.ShiftDefinitions())
	if err != nil {
		return nil, err
	}
	return p.Run(input)
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, dateCount, roleCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_dates":   gorm.Expr("total_dates + ?", dateCount),
			"total_roles":   gorm.Expr("total_roles + ?", roleCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:        apiKey.ID,
		Date:         today,
		RequestCount: 1,
		TotalDates:   dateCount,
		TotalRoles:   roleCount,
	})
}

// RecordRun persists the headline figures of a completed run
func (h *Handler) RecordRun(c *gin.Context, result *models.PlanResult) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	h.DB.Create(&database.PlanRun{
		ID:                 uuid.NewString(),
		KeyID:              apiKey.ID,
		PlanRows:           result.Summary.PlanRows,
		ScheduleRows:       result.Summary.ScheduleRows,
		ReconciliationRows: result.Summary.ReconciliationRows,
		UniqueDates:        result.Summary.UniqueDates,
		TotalAssigned:      result.Summary.TotalAssigned,
		TotalShortage:      result.Summary.TotalShortage,
		TotalSurplus:       result.Summary.TotalSurplus,
		UnresolvedRows:     result.Summary.UnresolvedRows,
	})
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// GenerateKey creates a new API key using the HMAC strategy
func (h *Handler) GenerateKey(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		RateLimit int    `json:"rate_limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if req.RateLimit == 0 {
		req.RateLimit = 10000
	}

	// Generate key using HMAC
	key := auth.GenerateHMACKey(req.Name)

	// Create preview (e.g., sk_...****)
	preview := ""
	if len(key) > 8 {
		preview = key[:3] + "..." + key[len(key)-4:]
	} else {
		preview = "****"
	}

	apiKey := database.APIKey{
		Key:        key,
		Name:       req.Name,
		KeyPreview: preview,
		RateLimit:  req.RateLimit,
	}

	if err := h.DB.Create(&apiKey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create key record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": req.Name,
		"key":  key,
	})
}

// ListKeys returns all API keys
func (h *Handler) ListKeys(c *gin.Context) {
	var keys []database.APIKey
	h.DB.Find(&keys)
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// RevokeKey deletes an API key
func (h *Handler) RevokeKey(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.APIKey{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Key revoked"})
}

// UpdateKeyLimit updates the rate limit for a key
func (h *Handler) UpdateKeyLimit(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		RateLimit int `json:"rate_limit" form:"rate_limit"`
	}

	// Try JSON first, then Form/Query
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rate_limit is required"})
			return
		}
	}

	if req.RateLimit == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate limit"})
		return
	}

	if err := h.DB.Model(&database.APIKey{}).Where("id = ?", id).Update("rate_limit", req.RateLimit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update key limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate limit updated successfully"})
}

// GetUsage returns usage stats for a key
func (h *Handler) GetUsage(c *gin.Context) {
	id := c.Param("id")
	var usage []database.APIUsage
	h.DB.Where("key_id = ?", id).Order("date desc").Limit(30).Find(&usage)
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}
