package doctorRepo

import "apexcare/models"

// DoctorRepository defines data access for the doctor roster.
type DoctorRepository interface {
	GetAll() ([]models.Doctor, error)
	GetByID(id int) (*models.Doctor, error)
	Upsert(doctor *models.Doctor) error
}
