package doctorRepo

import (
	"fmt"

	"apexcare/models"
)

// Roster is the clinic's doctor roster. IDs are stable: bookings and
// prescriptions reference them.
var Roster = []models.Doctor{
	{
		ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Cardiologist",
		Experience: "12 years", Rating: 4.8, Reviews: 240, ConsultationFee: 150,
		Availability: models.AvailabilityWindow{
			Days: []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, Start: "09:00", End: "17:00",
		},
	},
	{
		ID: 2, Name: "Dr. Michael Chen", Specialty: "Dermatologist",
		Experience: "8 years", Rating: 4.7, Reviews: 180, ConsultationFee: 120,
		Availability: models.AvailabilityWindow{
			Days: []string{"Mon", "Wed", "Fri"}, Start: "10:00", End: "18:00",
		},
	},
	{
		ID: 3, Name: "Dr. Emily Rodriguez", Specialty: "General Physician",
		Experience: "10 years", Rating: 4.9, Reviews: 320, ConsultationFee: 100,
		Availability: models.AvailabilityWindow{
			Days: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, Start: "09:00", End: "17:00",
		},
	},
	{
		ID: 4, Name: "Dr. James Wilson", Specialty: "Orthopedic Surgeon",
		Experience: "15 years", Rating: 4.6, Reviews: 150, ConsultationFee: 200,
		Availability: models.AvailabilityWindow{
			Days: []string{"Tue", "Thu"}, Start: "08:00", End: "16:00",
		},
	},
	{
		ID: 5, Name: "Dr. Priya Sharma", Specialty: "Pediatrician",
		Experience: "9 years", Rating: 4.8, Reviews: 210, ConsultationFee: 110,
		Availability: models.AvailabilityWindow{
			Days: []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, Start: "10:00", End: "18:00",
		},
	},
	{
		// Night shift: the window crosses midnight.
		ID: 6, Name: "Dr. David Kim", Specialty: "Emergency Medicine",
		Experience: "11 years", Rating: 4.5, Reviews: 95, ConsultationFee: 180,
		Availability: models.AvailabilityWindow{
			Days: []string{"Fri", "Sat", "Sun"}, Start: "18:00", End: "02:00",
		},
	},
}

// Seed upserts the roster so restarts keep doctor IDs stable.
func Seed(repo DoctorRepository) error {
	for i := range Roster {
		if err := repo.Upsert(&Roster[i]); err != nil {
			return fmt.Errorf("failed to seed doctor roster: %w", err)
		}
	}
	return nil
}
