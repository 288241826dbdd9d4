// controllers/forms.go - Public lead-capture form intake
package controllers

import (
	"net/http"
	"time"

	"foundation-site-api/config"
	"foundation-site-api/models"
	"foundation-site-api/services"
	"foundation-site-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// optional converts a form string into a nullable column value.
func optional(s string) *string {
	s = utils.SanitizeInput(s)
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

// storeSubmission assigns the submission ID and timestamp, persists the
// record and fires the staff notification email.
func storeSubmission(c *gin.Context, sub *models.Submission) {
	sub.SubmissionID = uuid.New().String()
	sub.SubmittedAt = time.Now().UTC().Format(time.RFC3339)

	if err := config.DB.Create(sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	// Notify staff without blocking the form response.
	go services.NotifyNewSubmission(sub)

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"submission_id": sub.SubmissionID,
		"message":       "Submission received",
	})
}

type AccessDayFormRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	PhoneNumber         string `json:"phoneNumber"`
	Organization        string `json:"organization"`
	Role                string `json:"role"`
	AreaOfInterest      string `json:"areaOfInterest"`
	Country             string `json:"country"`
	State               string `json:"state"`
	County              string `json:"county"`
	AgreeToTerms        bool   `json:"agreeToTerms"`
	SubscribeNewsletter bool   `json:"subscribeNewsletter"`
}

// SubmitAccessDayForm handles the Access Day registration form
func SubmitAccessDayForm(c *gin.Context) {
	var req AccessDayFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:                models.KindAccessDay,
		Email:               utils.SanitizeInput(req.Email),
		FirstName:           optional(req.FirstName),
		LastName:            optional(req.LastName),
		PhoneNumber:         optional(req.PhoneNumber),
		Organization:        optional(req.Organization),
		Role:                optional(req.Role),
		AreaOfInterest:      optional(req.AreaOfInterest),
		Country:             optional(req.Country),
		State:               optional(req.State),
		County:              optional(req.County),
		AgreeToTerms:        boolPtr(req.AgreeToTerms),
		SubscribeNewsletter: boolPtr(req.SubscribeNewsletter),
	})
}

type LibraryFormRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	PhoneNumber         string `json:"phoneNumber"`
	Organization        string `json:"organization"`
	Role                string `json:"role"`
	AreaOfInterest      string `json:"areaOfInterest"`
	Country             string `json:"country"`
	State               string `json:"state"`
	County              string `json:"county"`
	AgreeToTerms        bool   `json:"agreeToTerms"`
	SubscribeNewsletter bool   `json:"subscribeNewsletter"`
}

// SubmitLibraryForm handles the Library access form
func SubmitLibraryForm(c *gin.Context) {
	var req LibraryFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:                models.KindLibrary,
		Email:               utils.SanitizeInput(req.Email),
		FirstName:           optional(req.FirstName),
		LastName:            optional(req.LastName),
		PhoneNumber:         optional(req.PhoneNumber),
		Organization:        optional(req.Organization),
		Role:                optional(req.Role),
		AreaOfInterest:      optional(req.AreaOfInterest),
		Country:             optional(req.Country),
		State:               optional(req.State),
		County:              optional(req.County),
		AgreeToTerms:        boolPtr(req.AgreeToTerms),
		SubscribeNewsletter: boolPtr(req.SubscribeNewsletter),
	})
}

type NursingFormRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	PhoneNumber         string `json:"phoneNumber"`
	Institution         string `json:"institution"`
	Role                string `json:"role"`
	Country             string `json:"country"`
	State               string `json:"state"`
	County              string `json:"county"`
	AgreeToTerms        bool   `json:"agreeToTerms"`
	SubscribeNewsletter bool   `json:"subscribeNewsletter"`
}

// SubmitNursingForm handles the Nursing program form
func SubmitNursingForm(c *gin.Context) {
	var req NursingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:                models.KindNursing,
		Email:               utils.SanitizeInput(req.Email),
		FirstName:           optional(req.FirstName),
		LastName:            optional(req.LastName),
		PhoneNumber:         optional(req.PhoneNumber),
		Institution:         optional(req.Institution),
		Role:                optional(req.Role),
		Country:             optional(req.Country),
		State:               optional(req.State),
		County:              optional(req.County),
		AgreeToTerms:        boolPtr(req.AgreeToTerms),
		SubscribeNewsletter: boolPtr(req.SubscribeNewsletter),
	})
}

type REBSFormRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	PhoneNumber      string `json:"phoneNumber"`
	OrganizationType string `json:"organizationType"`
	PrimaryRole      string `json:"primaryRole"`
	IntendedUse      string `json:"intendedUse"`
	Country          string `json:"country"`
	State            string `json:"state"`
	County           string `json:"county"`
	AgreeToTerms     bool   `json:"agreeToTerms"`
}

// SubmitREBSForm handles the REBS download-request form
func SubmitREBSForm(c *gin.Context) {
	var req REBSFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:             models.KindREBS,
		Email:            utils.SanitizeInput(req.Email),
		FirstName:        optional(req.FirstName),
		LastName:         optional(req.LastName),
		PhoneNumber:      optional(req.PhoneNumber),
		OrganizationType: optional(req.OrganizationType),
		PrimaryRole:      optional(req.PrimaryRole),
		IntendedUse:      optional(req.IntendedUse),
		Country:          optional(req.Country),
		State:            optional(req.State),
		County:           optional(req.County),
		AgreeToTerms:     boolPtr(req.AgreeToTerms),
		IsDownloaded:     boolPtr(false),
	})
}

type RRGFormRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	PhoneNumber      string `json:"phoneNumber"`
	OrganizationType string `json:"organizationType"`
	PrimaryRole      string `json:"primaryRole"`
	IntendedUse      string `json:"intendedUse"`
	Country          string `json:"country"`
	State            string `json:"state"`
	County           string `json:"county"`
	AgreeToTerms     bool   `json:"agreeToTerms"`
}

// SubmitRRGForm handles the RRG download-request form
func SubmitRRGForm(c *gin.Context) {
	var req RRGFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:             models.KindRRG,
		Email:            utils.SanitizeInput(req.Email),
		FirstName:        optional(req.FirstName),
		LastName:         optional(req.LastName),
		PhoneNumber:      optional(req.PhoneNumber),
		OrganizationType: optional(req.OrganizationType),
		PrimaryRole:      optional(req.PrimaryRole),
		IntendedUse:      optional(req.IntendedUse),
		Country:          optional(req.Country),
		State:            optional(req.State),
		County:           optional(req.County),
		AgreeToTerms:     boolPtr(req.AgreeToTerms),
		IsDownloaded:     boolPtr(false),
	})
}

type ContactFormRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message" binding:"required"`
}

// SubmitContactForm handles the general contact form
func SubmitContactForm(c *gin.Context) {
	var req ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:        models.KindContact,
		Email:       utils.SanitizeInput(req.Email),
		FullName:    optional(req.FullName),
		PhoneNumber: optional(req.PhoneNumber),
		Message:     optional(req.Message),
	})
}

type PartnerFormRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	PhoneNumber         string `json:"phoneNumber"`
	Organization        string `json:"organization"`
	Role                string `json:"role"`
	FocusArea           string `json:"focusArea"`
	Message             string `json:"message"`
	Country             string `json:"country"`
	State               string `json:"state"`
	County              string `json:"county"`
	AgreeToTerms        bool   `json:"agreeToTerms"`
	SubscribeNewsletter bool   `json:"subscribeNewsletter"`
}

// SubmitPartnerForm handles the partnership inquiry form
func SubmitPartnerForm(c *gin.Context) {
	var req PartnerFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeSubmission(c, &models.Submission{
		Kind:                models.KindPartner,
		Email:               utils.SanitizeInput(req.Email),
		FirstName:           optional(req.FirstName),
		LastName:            optional(req.LastName),
		PhoneNumber:         optional(req.PhoneNumber),
		Organization:        optional(req.Organization),
		Role:                optional(req.Role),
		FocusArea:           optional(req.FocusArea),
		Message:             optional(req.Message),
		Country:             optional(req.Country),
		State:               optional(req.State),
		County:              optional(req.County),
		AgreeToTerms:        boolPtr(req.AgreeToTerms),
		SubscribeNewsletter: boolPtr(req.SubscribeNewsletter),
	})
}
