// controllers/dashboard.go - Admin dashboard statistics
package controllers

import (
	"net/http"
	"time"

	"foundation-site-api/config"
	"foundation-site-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns per-kind submission counts, the overall total
// and how many arrived in the last 7 days.
func GetDashboardStats(c *gin.Context) {
	counts := gin.H{}
	var total int64

	for _, kind := range models.AllKinds {
		var count int64
		if err := config.DB.Model(&models.Submission{}).
			Where("kind = ? AND delete_at IS NULL", kind).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
			return
		}
		counts[string(kind)] = count
		total += count
	}

	weekAgo := time.Now().UTC().AddDate(0, 0, -7).Format(time.RFC3339)
	var recent int64
	if err := config.DB.Model(&models.Submission{}).
		Where("delete_at IS NULL AND submitted_at >= ?", weekAgo).
		Count(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"statistics": gin.H{
			"by_kind":     counts,
			"total":       total,
			"last_7_days": recent,
		},
	})
}
