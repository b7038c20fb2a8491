// Package schedule derives a doctor's three-valued availability status
// from the weekly consultation window and current occupancy.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"apexcare/models"
)

// SlotDuration is how long a single consultation occupies a doctor.
const SlotDuration = 30 * time.Minute

// weekdayTokens maps time.Weekday to the roster's day abbreviations.
var weekdayTokens = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

// WeekdayToken returns the roster abbreviation for a weekday.
func WeekdayToken(d time.Weekday) string {
	return weekdayTokens[d]
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}
	return h*60 + m, nil
}

// InWindow reports whether the instant falls inside the weekly window.
// A window whose End precedes its Start crosses midnight, so the time
// match is the disjunction current >= start OR current <= end.
func InWindow(w models.AvailabilityWindow, now time.Time) (bool, error) {
	start, err := ParseClock(w.Start)
	if err != nil {
		return false, err
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return false, err
	}

	token := WeekdayToken(now.Weekday())
	dayMatch := false
	for _, d := range w.Days {
		if strings.EqualFold(d, token) {
			dayMatch = true
			break
		}
	}
	if !dayMatch {
		return false, nil
	}

	current := now.Hour()*60 + now.Minute()
	if end < start {
		return current >= start || current <= end, nil
	}
	return start <= current && current <= end, nil
}

// EvaluateAt computes the availability status for a window at an instant,
// given whether the doctor is currently occupied. Pure function: callers
// inject both the instant and the occupancy verdict.
func EvaluateAt(w models.AvailabilityWindow, now time.Time, occupied bool) (models.AvailabilityStatus, error) {
	in, err := InWindow(w, now)
	if err != nil {
		return "", err
	}
	if !in {
		return models.StatusUnavailable, nil
	}
	if occupied {
		return models.StatusBusy, nil
	}
	return models.StatusAvailable, nil
}

// OccupancyChecker answers whether a doctor is tied up at an instant.
type OccupancyChecker interface {
	IsOccupied(doctorID int, at time.Time) (bool, error)
}

// Evaluator binds the pure evaluation to a wall clock and an occupancy
// source. The Clock field exists so tests can pin "now".
type Evaluator struct {
	Clock     func() time.Time
	Occupancy OccupancyChecker
}

// NewEvaluator returns an Evaluator on the real wall clock.
func NewEvaluator(occupancy OccupancyChecker) *Evaluator {
	return &Evaluator{Clock: time.Now, Occupancy: occupancy}
}

// Status evaluates a doctor's availability at the evaluator's current
// instant. Occupancy is only consulted inside the window; the final
// classification is delegated to EvaluateAt.
func (e *Evaluator) Status(doctor *models.Doctor) (models.AvailabilityStatus, error) {
	now := e.Clock()

	in, err := InWindow(doctor.Availability, now)
	if err != nil {
		return "", fmt.Errorf("doctor %d has a malformed availability window: %w", doctor.ID, err)
	}

	occupied := false
	if in && e.Occupancy != nil {
		occupied, err = e.Occupancy.IsOccupied(doctor.ID, now)
		if err != nil {
			return "", fmt.Errorf("failed to check occupancy for doctor %d: %w", doctor.ID, err)
		}
	}
	return EvaluateAt(doctor.Availability, now, occupied)
}
