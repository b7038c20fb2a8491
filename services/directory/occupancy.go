package directory

import (
	"fmt"
	"time"

	appointmentRepo "apexcare/database/repository/appointment"
	"apexcare/services/schedule"
)

// AppointmentOccupancy derives "busy" from the booking queue: a doctor
// is occupied while a confirmed appointment covers the instant.
type AppointmentOccupancy struct {
	Repo appointmentRepo.AppointmentRepository
}

// IsOccupied reports whether a confirmed appointment of the doctor covers
// the instant. Appointments started shortly before midnight spill into
// the next calendar date, so the previous date is checked too.
func (o *AppointmentOccupancy) IsOccupied(doctorID int, at time.Time) (bool, error) {
	dates := []string{at.Format("2006-01-02")}
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	if at.Sub(midnight) < schedule.SlotDuration {
		dates = append(dates, at.AddDate(0, 0, -1).Format("2006-01-02"))
	}

	for _, date := range dates {
		appointments, err := o.Repo.GetConfirmedByDoctorDate(doctorID, date)
		if err != nil {
			return false, fmt.Errorf("failed to load appointments for doctor %d: %w", doctorID, err)
		}
		for _, a := range appointments {
			start, err := startInstant(a.Date, a.Time, at.Location())
			if err != nil {
				continue
			}
			if !at.Before(start) && at.Before(start.Add(schedule.SlotDuration)) {
				return true, nil
			}
		}
	}
	return false, nil
}

func startInstant(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}
