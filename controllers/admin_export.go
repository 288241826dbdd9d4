// controllers/admin_export.go - CSV/PDF export endpoints
package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"foundation-site-api/models"
	"foundation-site-api/services"

	"github.com/gin-gonic/gin"
)

// parseFilterConfig builds the engine filter from query parameters.
// date_from/date_to are yyyy-mm-dd and bound whole days.
func parseFilterConfig(c *gin.Context) (services.FilterConfig, error) {
	filters := services.FilterConfig{
		SearchText:   c.Query("search"),
		Country:      c.Query("country"),
		State:        c.Query("state"),
		Organization: c.Query("organization"),
		IntendedUse:  c.Query("intended_use"),
	}

	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filters, fmt.Errorf("invalid date_from %q, expected yyyy-mm-dd", from)
		}
		filters.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filters, fmt.Errorf("invalid date_to %q, expected yyyy-mm-dd", to)
		}
		filters.DateTo = &t
	}

	return filters, nil
}

// parseColumns applies an optional ?columns= override (comma-separated
// column keys) to the kind's default set. With no override the defaults
// stand; with one, exactly the named columns are enabled, in default order.
func parseColumns(c *gin.Context, kind models.SubmissionKind) []services.ExportColumn {
	cols := services.DefaultColumns(kind)

	raw, ok := c.GetQuery("columns")
	if !ok {
		return cols
	}

	wanted := make(map[string]bool)
	for _, key := range strings.Split(raw, ",") {
		if k := strings.TrimSpace(key); k != "" {
			wanted[k] = true
		}
	}

	for i := range cols {
		cols[i].Enabled = wanted[cols[i].Key]
	}
	return cols
}

// exportStatus maps engine guard errors to 400s and everything else to 500.
func exportStatus(err error) int {
	if errors.Is(err, services.ErrNoColumnsSelected) || errors.Is(err, services.ErrNoSubmissions) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// loadFilteredSubmissions loads one kind and applies the request filters.
func loadFilteredSubmissions(c *gin.Context) (models.SubmissionKind, []models.Submission, bool) {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown submission kind"})
		return "", nil, false
	}

	filters, err := parseFilterConfig(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", nil, false
	}

	subs, err := loadKindSubmissions(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return "", nil, false
	}

	return kind, services.FilterSubmissions(subs, filters), true
}

// ExportSubmissionsCSV streams the filtered collection as a CSV download.
func ExportSubmissionsCSV(c *gin.Context) {
	kind, subs, ok := loadFilteredSubmissions(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := services.ExportCSV(&buf, subs, parseColumns(c, kind)); err != nil {
		c.JSON(exportStatus(err), gin.H{"error": err.Error()})
		return
	}

	filename := services.CollectionFilename(kind, "csv", time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportSubmissionsPDF streams the filtered collection as a PDF download.
func ExportSubmissionsPDF(c *gin.Context) {
	kind, subs, ok := loadFilteredSubmissions(c)
	if !ok {
		return
	}

	now := time.Now()
	var buf bytes.Buffer
	if err := services.ExportPDF(&buf, subs, parseColumns(c, kind), kind, now); err != nil {
		c.JSON(exportStatus(err), gin.H{"error": err.Error()})
		return
	}

	filename := services.CollectionFilename(kind, "pdf", now)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ExportSingleSubmissionCSV downloads one submission as sectioned CSV.
func ExportSingleSubmissionCSV(c *gin.Context) {
	sub, ok := getKindSubmission(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := services.ExportSubmissionCSV(&buf, sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export submission"})
		return
	}

	filename := services.SingleFilename(sub, "csv", time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportSingleSubmissionPDF downloads one submission as a sectioned PDF.
func ExportSingleSubmissionPDF(c *gin.Context) {
	sub, ok := getKindSubmission(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := services.ExportSubmissionPDF(&buf, sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export submission"})
		return
	}

	filename := services.SingleFilename(sub, "pdf", time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
