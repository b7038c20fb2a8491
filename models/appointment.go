package models

import "time"

// Appointment lifecycle states.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment types.
const (
	AppointmentOnline   = "online"
	AppointmentInPerson = "in-person"
)

// PatientDetails is the intake information captured by the booking flow.
// Reason and Symptoms are optional; everything else is required before
// a booking can be confirmed.
type PatientDetails struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Age      string `bson:"age" json:"age"`
	Gender   string `bson:"gender" json:"gender"`
	Reason   string `bson:"reason,omitempty" json:"reason,omitempty"`
	Symptoms string `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
}

// FeeBreakdown records the charge components for a confirmed booking.
type FeeBreakdown struct {
	Consultation int `bson:"consultation" json:"consultation"`
	Platform     int `bson:"platform" json:"platform"`
	Total        int `bson:"total" json:"total"`
}

// Appointment is a confirmed booking between a patient and a doctor.
type Appointment struct {
	ID         string         `bson:"id" json:"id"`
	DoctorID   int            `bson:"doctorId" json:"doctorId"`
	DoctorName string         `bson:"doctorName" json:"doctorName"`
	PatientID  string         `bson:"patientId" json:"patientId"`
	Type       string         `bson:"type" json:"type"` // "online" or "in-person"
	Date       string         `bson:"date" json:"date"` // "2006-01-02"
	Time       string         `bson:"time" json:"time"` // "HH:MM"
	Patient    PatientDetails `bson:"patient" json:"patient"`
	Fees       FeeBreakdown   `bson:"fees" json:"fees"`
	Status     string         `bson:"status" json:"status"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
}
