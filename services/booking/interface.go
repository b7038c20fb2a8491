package booking

import (
	"time"

	appointmentRepo "apexcare/database/repository/appointment"
	doctorRepo "apexcare/database/repository/doctor"
	"apexcare/models"
	"apexcare/services/notification"
	"apexcare/services/tasks"

	"github.com/go-redis/redis/v8"
)

// BookingSessionService manages the stateful booking wizard: a linear
// three-step flow (choose doctor, choose schedule, patient details) with
// a gate per step and a terminal confirm.
type BookingSessionService interface {
	StartSession(userID string) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)
	SelectDoctor(sessionID string, doctorID int) (*models.BookingSession, error)
	SetSchedule(sessionID, appointmentType, date, clock string) (*models.BookingSession, error)
	SetPatientDetails(sessionID string, details models.PatientDetails) (*models.BookingSession, error)
	Next(sessionID string) (*models.BookingSession, error)
	Back(sessionID string) (*models.BookingSession, error)
	Confirm(sessionID string) (*models.Appointment, *models.Invoice, error)
	CancelSession(sessionID string) error
	CandidateDates() []string
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	DoctorRepo      doctorRepo.DoctorRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Payments        PaymentHandler
	Notifier        notification.NotificationService
	Reminders       *tasks.ReminderScheduler
	Cache           *redis.Client
	Clock           func() time.Time
	PlatformFee     int
}
