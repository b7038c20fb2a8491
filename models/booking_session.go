package models

import "time"

// Booking wizard steps.
const (
	StepChooseDoctor   = 1
	StepChooseSchedule = 2
	StepPatientDetails = 3
)

// Booking session statuses.
const (
	SessionDraft      = "draft"
	SessionConfirming = "confirming"
)

// DoctorSummary is the slice of a doctor carried inside a booking draft.
type DoctorSummary struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty"`
	ConsultationFee int    `json:"consultationFee"`
}

// BookingDraft is the in-progress booking data accumulated across the
// wizard steps. It lives only inside the session and is discarded on
// confirm or cancel.
type BookingDraft struct {
	SelectedDoctor  *DoctorSummary `json:"selectedDoctor,omitempty"`
	AppointmentType string         `json:"appointmentType,omitempty"`
	Date            string         `json:"date,omitempty"`
	Time            string         `json:"time,omitempty"`
	Patient         PatientDetails `json:"patient"`
}

// BookingSession holds the wizard state between the first step and final
// confirmation. Stored in Redis under its SessionID with a TTL.
type BookingSession struct {
	SessionID     string       `json:"sessionId"`
	UserID        string       `json:"userId"`
	Step          int          `json:"step"`
	Status        string       `json:"status"`
	Draft         BookingDraft `json:"draft"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// BookingResponse is the wire shape returned by the booking endpoints.
type BookingResponse struct {
	SessionID      string        `json:"sessionId,omitempty"`
	Step           int           `json:"step,omitempty"`
	Draft          *BookingDraft `json:"draft,omitempty"`
	CandidateDates []string      `json:"candidateDates,omitempty"`
	Booking        *Appointment  `json:"booking,omitempty"`
	Invoice        *Invoice      `json:"invoice,omitempty"`
}
