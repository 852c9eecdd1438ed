package handlers

import (
	"net/http"

	"github.com/dmreilly/staffing-planner-api/pkg/database"
	"github.com/gin-gonic/gin"
)

// GetMyUsage returns usage stats for the authenticated API key
func (h *Handler) GetMyUsage(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	var usage []database.APIUsage
	if err := h.DB.Where("key_id = ?", apiKey.ID).Order("date desc").Limit(30).Find(&usage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	// Calculate totals
	var totalRequests, totalDates, totalRoles int64
	for _, u := range usage {
		totalRequests += int64(u.RequestCount)
		totalDates += int64(u.TotalDates)
		totalRoles += int64(u.TotalRoles)
	}

	c.JSON(http.StatusOK, gin.H{
		"key_name":      apiKey.Name,
		"rate_limit":    apiKey.RateLimit,
		"usage_history": usage,
		"totals": gin.H{
			"requests": totalRequests,
			"dates":    totalDates,
			"roles":    totalRoles,
		},
	})
}

// ListMyRuns returns recent plan runs for the authenticated API key
func (h *Handler) ListMyRuns(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	var runs []database.PlanRun
	if err := h.DB.Where("key_id = ?", apiKey.ID).Order("created_at desc").Limit(30).Find(&runs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch run history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
