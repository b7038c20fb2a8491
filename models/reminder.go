package models

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
