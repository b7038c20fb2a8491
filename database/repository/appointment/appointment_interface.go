package appointmentRepo

import "apexcare/models"

// AppointmentRepository defines data access for confirmed bookings.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByPatient(patientID string) ([]models.Appointment, error)
	GetByDoctor(doctorID int) ([]models.Appointment, error)
	// GetConfirmedByDoctorDate returns the doctor's confirmed appointments
	// on a calendar date ("2006-01-02"). Feeds the busy derivation.
	GetConfirmedByDoctorDate(doctorID int, date string) ([]models.Appointment, error)
	UpdateStatus(id, status string) error
}
