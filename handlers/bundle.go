package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration
// takes one wired value.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	MeHandler             gin.HandlerFunc
	DeleteAccountHandler  gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Doctor directory endpoints.
	ListDoctorsHandler     gin.HandlerFunc
	GetDoctorHandler       gin.HandlerFunc
	ListSpecialtiesHandler gin.HandlerFunc

	// Booking wizard endpoints.
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	SelectDoctor   gin.HandlerFunc
	SetSchedule    gin.HandlerFunc
	SetDetails     gin.HandlerFunc
	NextStep       gin.HandlerFunc
	PrevStep       gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelSession  gin.HandlerFunc

	// Dashboard endpoints.
	ListMyAppointments      gin.HandlerFunc
	CancelAppointment       gin.HandlerFunc
	ListDoctorAppointments  gin.HandlerFunc
	CompleteAppointment     gin.HandlerFunc
	IssuePrescription       gin.HandlerFunc
	ListMyPrescriptions     gin.HandlerFunc
	ListIssuedPrescriptions gin.HandlerFunc

	// Contact endpoint.
	SubmitContact gin.HandlerFunc

	// Report storage endpoints.
	UploadReport gin.HandlerFunc
	GetReportURL gin.HandlerFunc
	DeleteReport gin.HandlerFunc
}
