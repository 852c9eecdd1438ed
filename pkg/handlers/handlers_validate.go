package handlers

import (
	"net/http"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidatePlan checks a plan input structurally without running the pipeline
func (h *Handler) ValidatePlan(c *gin.Context) {
	var input models.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Census) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one census record is required",
		})
		return
	}

	if len(input.Ratios) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one staffing ratio is required",
		})
		return
	}

	if len(input.SeasonRules) == 0 && len(h.Settings.Seasons) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "Season rules are required, inline or in the settings file",
		})
		return
	}

	// Duplicate census dates
	dates := make(map[string]bool)
	for _, r := range input.Census {
		if dates[r.Date.String()] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate census date: " + r.Date.String()})
			return
		}
		dates[r.Date.String()] = true
		if r.ProjectedCensus < 0 {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Negative census for date: " + r.Date.String()})
			return
		}
	}

	for _, r := range input.Resources {
		if r.LeaveFTE > r.AvailableFTE {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Leave FTE exceeds available FTE for role: " + r.Role})
			return
		}
	}

	// Every role with a ratio needs shifts from somewhere
	fallback := h.Settings.ShiftDefinitions()
	inline := make(map[string]bool)
	for _, s := range input.Shifts {
		inline[s.Role] = true
	}
	for _, r := range input.Ratios {
		if !inline[r.Role] && len(fallback[r.Role]) == 0 {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "No shift definitions for role: " + r.Role})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"census_count":   len(input.Census),
			"role_count":     len(input.Ratios),
			"resource_count": len(input.Resources),
		},
	})
}
