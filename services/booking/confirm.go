package booking

import (
	"context"
	"fmt"
	"time"

	"apexcare/models"
	"apexcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	confirmLockPrefix = "bookingConfirm:"
	confirmLockTTL    = 30 * time.Second
)

// Confirm finalizes the booking: it re-checks every step gate, computes
// the fee breakdown, persists the appointment, raises the invoice and
// discards the session. A Redis SETNX lock guards against double
// submission; cancelling the confirmation dialog simply means never
// calling Confirm, so the draft stays intact at step 3.
func (s *DefaultBookingSessionService) Confirm(sessionID string) (*models.Appointment, *models.Invoice, error) {
	ctx := context.Background()

	locked, err := s.Cache.SetNX(ctx, confirmLockPrefix+sessionID, 1, confirmLockTTL).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire confirmation lock: %w", err)
	}
	if !locked {
		return nil, nil, ErrConfirmInFlight
	}
	defer s.Cache.Del(ctx, confirmLockPrefix+sessionID)

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step != models.StepPatientDetails {
		return nil, nil, ErrWrongStep
	}
	if err := s.checkDraftComplete(session); err != nil {
		return nil, nil, err
	}

	// Visible to concurrent GetSession calls while the confirm runs.
	session.Status = models.SessionConfirming
	if err := s.saveSession(session); err != nil {
		return nil, nil, err
	}

	draft := session.Draft
	fees := ComputeFees(draft.SelectedDoctor.ConsultationFee, s.platformFee())
	appointment := models.Appointment{
		ID:         uuid.New().String(),
		DoctorID:   draft.SelectedDoctor.ID,
		DoctorName: draft.SelectedDoctor.Name,
		PatientID:  session.UserID,
		Type:       draft.AppointmentType,
		Date:       draft.Date,
		Time:       draft.Time,
		Patient:    draft.Patient,
		Fees:       fees,
		Status:     models.AppointmentConfirmed,
		CreatedAt:  s.now(),
	}

	invoice, err := s.Payments.RaiseInvoice(ctx, &appointment)
	if err != nil {
		s.revertToDraft(session)
		return nil, nil, fmt.Errorf("failed to raise invoice: %w", err)
	}

	if err := s.AppointmentRepo.Create(&appointment); err != nil {
		s.revertToDraft(session)
		return nil, nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	// Post-booking effects must never fail the confirmed booking.
	logger := utils.GetLogger()
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, session.UserID, &appointment); err != nil {
			logger.Warn("booking confirmation push failed", zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(&appointment); err != nil {
			logger.Warn("failed to schedule appointment reminder", zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}

	s.Cache.Del(ctx, sessionPrefix+sessionID)
	return &appointment, invoice, nil
}

// revertToDraft puts a failed confirm back into an editable state so the
// user can retry.
func (s *DefaultBookingSessionService) revertToDraft(session *models.BookingSession) {
	session.Status = models.SessionDraft
	if err := s.saveSession(session); err != nil {
		utils.GetLogger().Warn("failed to revert booking session to draft",
			zap.String("sessionId", session.SessionID), zap.Error(err))
	}
}

// checkDraftComplete validates every gate, not just the last one, before
// a booking is written.
func (s *DefaultBookingSessionService) checkDraftComplete(session *models.BookingSession) error {
	d := session.Draft
	if d.SelectedDoctor == nil {
		return fmt.Errorf("%w: no doctor selected", ErrStepIncomplete)
	}
	if d.AppointmentType == "" || d.Date == "" || d.Time == "" {
		return fmt.Errorf("%w: schedule not chosen", ErrStepIncomplete)
	}
	if !canProceed(session) {
		return fmt.Errorf("%w: patient details missing", ErrStepIncomplete)
	}
	return nil
}
