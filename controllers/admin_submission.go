// controllers/admin_submission.go - Admin dashboard submission endpoints
package controllers

import (
	"net/http"
	"time"

	"foundation-site-api/config"
	"foundation-site-api/models"
	"foundation-site-api/services"

	"github.com/gin-gonic/gin"
)

// loadKindSubmissions fetches one kind's collection, newest first.
func loadKindSubmissions(kind models.SubmissionKind) ([]models.Submission, error) {
	var subs []models.Submission
	err := config.DB.
		Where("kind = ? AND delete_at IS NULL", kind).
		Order("submitted_at DESC").
		Find(&subs).Error
	return subs, err
}

// GetAllSubmissions returns the full denormalized bundle the dashboard
// works from: every kind's collection in one response. Counts are computed
// from the items actually returned.
func GetAllSubmissions(c *gin.Context) {
	bundle := gin.H{}
	for _, kind := range models.AllKinds {
		subs, err := loadKindSubmissions(kind)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
			return
		}
		bundle[string(kind)] = gin.H{
			"items": subs,
			"count": len(subs),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": bundle,
	})
}

// GetFilterOptions returns the distinct values for the dashboard filter
// dropdowns of one kind. State options narrow to the selected country when
// a ?country= parameter is present.
func GetFilterOptions(c *gin.Context) {
	kind, ok := models.ParseKind(c.Query("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown submission kind"})
		return
	}

	subs, err := loadKindSubmissions(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"options": gin.H{
			"country":      services.UniqueValues(subs, services.OptionCountry),
			"state":        services.StateOptions(subs, c.Query("country")),
			"organization": services.UniqueValues(subs, services.OptionOrganization),
			"intended_use": services.UniqueValues(subs, services.OptionIntendedUse),
		},
	})
}

// getKindSubmission loads a single live submission by kind and ID.
func getKindSubmission(c *gin.Context) (*models.Submission, bool) {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown submission kind"})
		return nil, false
	}

	var sub models.Submission
	err := config.DB.
		Where("submission_id = ? AND kind = ? AND delete_at IS NULL", c.Param("id"), kind).
		First(&sub).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return nil, false
	}
	return &sub, true
}

// DeleteSubmission soft-deletes one submission.
func DeleteSubmission(c *gin.Context) {
	sub, ok := getKindSubmission(c)
	if !ok {
		return
	}

	if err := config.DB.Model(sub).Update("delete_at", time.Now()).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission deleted"})
}

// MarkSubmissionDownloaded flags a REBS/RRG submission as downloaded.
func MarkSubmissionDownloaded(c *gin.Context) {
	sub, ok := getKindSubmission(c)
	if !ok {
		return
	}

	if !models.KindHasField(sub.Kind, models.FieldDownloaded) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This submission kind has no download flag"})
		return
	}

	if err := config.DB.Model(sub).Update("is_downloaded", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission marked as downloaded"})
}
