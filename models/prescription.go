package models

import "time"

// Medication is a single line item on a prescription.
type Medication struct {
	Name      string `bson:"name" json:"name" binding:"required"`
	Dosage    string `bson:"dosage" json:"dosage" binding:"required"`
	Frequency string `bson:"frequency" json:"frequency"`
	Duration  string `bson:"duration" json:"duration"`
}

// Prescription is issued by a doctor against a completed appointment.
type Prescription struct {
	ID            string       `bson:"id" json:"id"`
	AppointmentID string       `bson:"appointmentId" json:"appointmentId"`
	DoctorID      int          `bson:"doctorId" json:"doctorId"`
	DoctorName    string       `bson:"doctorName" json:"doctorName"`
	PatientID     string       `bson:"patientId" json:"patientId"`
	Medications   []Medication `bson:"medications" json:"medications"`
	Notes         string       `bson:"notes,omitempty" json:"notes,omitempty"`
	IssuedAt      time.Time    `bson:"issuedAt" json:"issuedAt"`
}
