package routes

import (
	"foundation-site-api/controllers"
	"foundation-site-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Lead-capture forms
			forms := public.Group("/forms")
			{
				forms.POST("/access-day", controllers.SubmitAccessDayForm)
				forms.POST("/library", controllers.SubmitLibraryForm)
				forms.POST("/nursing", controllers.SubmitNursingForm)
				forms.POST("/rebs", controllers.SubmitREBSForm)
				forms.POST("/rrg", controllers.SubmitRRGForm)
				forms.POST("/contact", controllers.SubmitContactForm)
				forms.POST("/partner", controllers.SubmitPartnerForm)
			}

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Foundation Site API is running",
				})
			})
		}

		// Admin routes (require authentication)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			// Auth management
			admin.POST("/logout", controllers.Logout)
			admin.GET("/profile", controllers.GetProfile)
			admin.PUT("/change-password", controllers.ChangePassword)

			// Submissions
			submissions := admin.Group("/submissions")
			{
				submissions.GET("", controllers.GetAllSubmissions)
				submissions.GET("/options", controllers.GetFilterOptions)
				submissions.DELETE("/:kind/:id", controllers.DeleteSubmission)
				submissions.PATCH("/:kind/:id/downloaded", controllers.MarkSubmissionDownloaded)

				// Exports
				submissions.GET("/:kind/export/csv", controllers.ExportSubmissionsCSV)
				submissions.GET("/:kind/export/pdf", controllers.ExportSubmissionsPDF)
				submissions.GET("/:kind/:id/export/csv", controllers.ExportSingleSubmissionCSV)
				submissions.GET("/:kind/:id/export/pdf", controllers.ExportSingleSubmissionPDF)
			}

			// Dashboard
			admin.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}
}
