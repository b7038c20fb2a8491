// File: booking/service.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"apexcare/models"
	"apexcare/services/schedule"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionPrefix = "bookingSession:"
	sessionTTL    = 30 * time.Minute
)

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultBookingSessionService) platformFee() int {
	if s.PlatformFee > 0 {
		return s.PlatformFee
	}
	return DefaultPlatformFee
}

// StartSession creates a new booking session at step 1 and stores it in
// Redis under a fresh session ID.
func (s *DefaultBookingSessionService) StartSession(userID string) (*models.BookingSession, error) {
	now := s.now()
	session := models.BookingSession{
		SessionID:     uuid.New().String(),
		UserID:        userID,
		Step:          models.StepChooseDoctor,
		Status:        models.SessionDraft,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.saveSession(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession retrieves the session from Redis.
func (s *DefaultBookingSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// SelectDoctor records the chosen doctor on the draft. Only valid while
// the wizard is on step 1.
func (s *DefaultBookingSessionService) SelectDoctor(sessionID string, doctorID int) (*models.BookingSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepChooseDoctor {
		return nil, ErrWrongStep
	}

	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("selected doctor not found: %w", err)
	}

	session.Draft.SelectedDoctor = &models.DoctorSummary{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialty:       doctor.Specialty,
		ConsultationFee: doctor.ConsultationFee,
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetSchedule records appointment type, date and time on the draft. Only
// valid while the wizard is on step 2.
func (s *DefaultBookingSessionService) SetSchedule(sessionID, appointmentType, date, clock string) (*models.BookingSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepChooseSchedule {
		return nil, ErrWrongStep
	}
	if session.Draft.SelectedDoctor == nil {
		return nil, ErrStepIncomplete
	}

	if appointmentType != models.AppointmentOnline && appointmentType != models.AppointmentInPerson {
		return nil, fmt.Errorf("unknown appointment type %q", appointmentType)
	}
	now := s.now()
	if !schedule.IsCandidateDate(date, now) {
		return nil, fmt.Errorf("date %q is outside the bookable window", date)
	}
	if _, err := schedule.ParseClock(clock); err != nil {
		return nil, err
	}
	if err := s.checkWithinDoctorWindow(session.Draft.SelectedDoctor.ID, date, clock, now.Location()); err != nil {
		return nil, err
	}

	session.Draft.AppointmentType = appointmentType
	session.Draft.Date = date
	session.Draft.Time = clock
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// checkWithinDoctorWindow rejects times outside the doctor's weekly window.
func (s *DefaultBookingSessionService) checkWithinDoctorWindow(doctorID int, date, clock string, loc *time.Location) error {
	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		return fmt.Errorf("selected doctor not found: %w", err)
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return fmt.Errorf("invalid schedule selection: %w", err)
	}
	in, err := schedule.InWindow(doctor.Availability, at)
	if err != nil {
		return err
	}
	if !in {
		return fmt.Errorf("%s is not available on %s at %s", doctor.Name, date, clock)
	}
	return nil
}

// SetPatientDetails records the intake fields on the draft. Only valid
// while the wizard is on step 3.
func (s *DefaultBookingSessionService) SetPatientDetails(sessionID string, details models.PatientDetails) (*models.BookingSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPatientDetails {
		return nil, ErrWrongStep
	}

	session.Draft.Patient = details
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// canProceed evaluates the completion gate for the session's current step.
func canProceed(session *models.BookingSession) bool {
	switch session.Step {
	case models.StepChooseDoctor:
		return session.Draft.SelectedDoctor != nil
	case models.StepChooseSchedule:
		return session.Draft.AppointmentType != "" &&
			session.Draft.Date != "" &&
			session.Draft.Time != ""
	case models.StepPatientDetails:
		p := session.Draft.Patient
		return strings.TrimSpace(p.Name) != "" &&
			strings.TrimSpace(p.Email) != "" &&
			strings.TrimSpace(p.Phone) != "" &&
			strings.TrimSpace(p.Age) != "" &&
			strings.TrimSpace(p.Gender) != ""
	default:
		return false
	}
}

// Next advances the wizard one step. When the current gate fails the
// step index stays unchanged and ErrStepIncomplete is returned; callers
// observe a no-op. There is no skip: each advance applies only the
// current step's gate.
func (s *DefaultBookingSessionService) Next(sessionID string) (*models.BookingSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step >= models.StepPatientDetails {
		// Step 3 terminates through Confirm, not Next.
		return session, ErrStepIncomplete
	}
	if !canProceed(session) {
		return session, ErrStepIncomplete
	}

	session.Step++
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard one step back without touching the draft. At
// step 1 it is a no-op.
func (s *DefaultBookingSessionService) Back(sessionID string) (*models.BookingSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > models.StepChooseDoctor {
		session.Step--
		if err := s.saveSession(session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// CancelSession discards the session and its draft.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// CandidateDates returns the bookable dates relative to the service clock.
func (s *DefaultBookingSessionService) CandidateDates() []string {
	return schedule.CandidateDates(s.now())
}

func (s *DefaultBookingSessionService) saveSession(session *models.BookingSession) error {
	session.LastUpdatedAt = s.now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Cache.Set(ctx, sessionPrefix+session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
