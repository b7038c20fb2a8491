package routes

import (
	"net/http"
	"time"

	"apexcare/handlers"
	"apexcare/middleware"
	"apexcare/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterContactRoute(r, hb)
	RegisterStorageRoutes(r, hb)
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.RegisterHandler)
		api.POST("/signin", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/signout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterDoctorRoutes registers the public doctor directory.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/specialties", hb.ListSpecialtiesHandler)
		api.GET("/:id", hb.GetDoctorHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("/session", hb.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID/doctor", hb.SelectDoctor)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.SetSchedule)
		bookingGroup.PUT("/session/:sessionID/details", hb.SetDetails)
		bookingGroup.POST("/session/:sessionID/next", hb.NextStep)
		bookingGroup.POST("/session/:sessionID/back", hb.PrevStep)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterDashboardRoutes registers the patient and doctor dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	patient := r.Group("/api/patient")
	{
		patient.Use(middleware.JWTAuthMiddleware())
		patient.GET("/appointments", hb.ListMyAppointments)
		patient.DELETE("/appointments/:id", hb.CancelAppointment)
		patient.GET("/prescriptions", hb.ListMyPrescriptions)
	}

	doctor := r.Group("/api/doctor")
	{
		doctor.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleDoctor))
		doctor.GET("/appointments", hb.ListDoctorAppointments)
		doctor.PUT("/appointments/:id/complete", hb.CompleteAppointment)
		doctor.POST("/prescriptions", hb.IssuePrescription)
		doctor.GET("/prescriptions", hb.ListIssuedPrescriptions)
	}
}

// RegisterContactRoute registers the public contact form endpoint.
func RegisterContactRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.SubmitContact)
}

// RegisterStorageRoutes registers the medical report endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/upload", hb.UploadReport)
		api.GET("/url", hb.GetReportURL)
		api.DELETE("", hb.DeleteReport)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ApexCare"})
	})
}
