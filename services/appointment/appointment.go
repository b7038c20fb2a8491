// Package appointment backs the patient and doctor dashboards: listing,
// cancelling and completing bookings, and issuing prescriptions.
package appointment

import (
	"fmt"
	"time"

	appointmentRepo "apexcare/database/repository/appointment"
	prescriptionRepo "apexcare/database/repository/prescription"
	"apexcare/models"

	"github.com/google/uuid"
)

// AppointmentService defines the dashboard operations.
type AppointmentService interface {
	ListForPatient(patientID string) ([]models.Appointment, error)
	ListForDoctor(doctorID int) ([]models.Appointment, error)
	Cancel(patientID, appointmentID string) error
	Complete(doctorID int, appointmentID string) error
	IssuePrescription(doctorID int, doctorName string, input PrescriptionInput) (*models.Prescription, error)
	PrescriptionsForPatient(patientID string) ([]models.Prescription, error)
	PrescriptionsForDoctor(doctorID int) ([]models.Prescription, error)
}

// PrescriptionInput is the payload for issuing a prescription.
type PrescriptionInput struct {
	AppointmentID string              `json:"appointmentId" binding:"required"`
	Medications   []models.Medication `json:"medications" binding:"required,min=1"`
	Notes         string              `json:"notes"`
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo          appointmentRepo.AppointmentRepository
	Prescriptions prescriptionRepo.PrescriptionRepository
}

func (s *DefaultAppointmentService) ListForPatient(patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatient(patientID)
}

func (s *DefaultAppointmentService) ListForDoctor(doctorID int) ([]models.Appointment, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// Cancel sets a confirmed appointment to cancelled. Only the booking
// patient may cancel it.
func (s *DefaultAppointmentService) Cancel(patientID, appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return fmt.Errorf("appointment %s does not belong to this patient", appointmentID)
	}
	if appt.Status != models.AppointmentConfirmed {
		return fmt.Errorf("appointment %s is %s and cannot be cancelled", appointmentID, appt.Status)
	}
	return s.Repo.UpdateStatus(appointmentID, models.AppointmentCancelled)
}

// Complete marks a confirmed appointment as completed. Only the treating
// doctor may complete it.
func (s *DefaultAppointmentService) Complete(doctorID int, appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appt.DoctorID != doctorID {
		return fmt.Errorf("appointment %s does not belong to this doctor", appointmentID)
	}
	if appt.Status != models.AppointmentConfirmed {
		return fmt.Errorf("appointment %s is %s and cannot be completed", appointmentID, appt.Status)
	}
	return s.Repo.UpdateStatus(appointmentID, models.AppointmentCompleted)
}

// IssuePrescription records a prescription against one of the doctor's
// completed appointments.
func (s *DefaultAppointmentService) IssuePrescription(doctorID int, doctorName string, input PrescriptionInput) (*models.Prescription, error) {
	appt, err := s.Repo.GetByID(input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt.DoctorID != doctorID {
		return nil, fmt.Errorf("appointment %s does not belong to this doctor", input.AppointmentID)
	}
	if appt.Status != models.AppointmentCompleted {
		return nil, fmt.Errorf("prescriptions require a completed appointment, %s is %s", input.AppointmentID, appt.Status)
	}

	prescription := &models.Prescription{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		DoctorID:      doctorID,
		DoctorName:    doctorName,
		PatientID:     appt.PatientID,
		Medications:   input.Medications,
		Notes:         input.Notes,
		IssuedAt:      time.Now(),
	}
	if err := s.Prescriptions.Create(prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

func (s *DefaultAppointmentService) PrescriptionsForPatient(patientID string) ([]models.Prescription, error) {
	return s.Prescriptions.GetByPatient(patientID)
}

func (s *DefaultAppointmentService) PrescriptionsForDoctor(doctorID int) ([]models.Prescription, error) {
	return s.Prescriptions.GetByDoctor(doctorID)
}
