package prescriptionRepo

import "apexcare/models"

// PrescriptionRepository defines data access for issued prescriptions.
type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
	GetByPatient(patientID string) ([]models.Prescription, error)
	GetByDoctor(doctorID int) ([]models.Prescription, error)
}
