package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"apexcare/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how long before the appointment the reminder fires.
const ReminderLeadTime = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders on the asynq queue.
type ReminderScheduler struct {
	Client *asynq.Client
	Clock  func() time.Time
}

// ScheduleAppointmentReminder enqueues a reminder to fire ReminderLeadTime
// before the appointment start. Appointments nearer than that get no
// reminder.
func (r *ReminderScheduler) ScheduleAppointmentReminder(appointment *models.Appointment) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", appointment.Date+" "+appointment.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment schedule: %w", err)
	}

	now := time.Now()
	if r.Clock != nil {
		now = r.Clock()
	}
	fireAt := start.Add(-ReminderLeadTime)
	if fireAt.Before(now) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appointment.ID,
		UserID:        appointment.PatientID,
		Title:         "Upcoming appointment",
		Body: fmt.Sprintf("Reminder: %s appointment with %s tomorrow at %s.",
			appointment.Type, appointment.DoctorName, appointment.Time),
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := r.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
