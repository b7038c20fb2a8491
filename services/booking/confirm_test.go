package booking

import (
	"context"
	"testing"

	"apexcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPatient = models.PatientDetails{
	Name:   "Jane Doe",
	Email:  "jane@example.com",
	Phone:  "+1-555-0100",
	Age:    "34",
	Gender: "female",
	Reason: "Annual checkup",
}

func advanceToDetails(t *testing.T, svc *DefaultBookingSessionService) *models.BookingSession {
	t.Helper()
	session := advanceToSchedule(t, svc, 3)
	_, err := svc.SetSchedule(session.SessionID, models.AppointmentInPerson, "2025-06-03", "10:00")
	require.NoError(t, err)
	got, err := svc.Next(session.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.StepPatientDetails, got.Step)
	return got
}

func TestConfirmFullFlow(t *testing.T) {
	svc, appts := newTestService(t)
	session := advanceToDetails(t, svc)

	_, err := svc.SetPatientDetails(session.SessionID, testPatient)
	require.NoError(t, err)

	appointment, invoice, err := svc.Confirm(session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, 3, appointment.DoctorID)
	assert.Equal(t, "Dr. Emily Rodriguez", appointment.DoctorName)
	assert.Equal(t, "user-1", appointment.PatientID)
	assert.Equal(t, models.AppointmentConfirmed, appointment.Status)
	assert.Equal(t, "2025-06-03", appointment.Date)
	assert.Equal(t, "10:00", appointment.Time)
	assert.Equal(t, testPatient, appointment.Patient)

	// Consultation 100 plus platform fee 5.
	assert.Equal(t, 100, appointment.Fees.Consultation)
	assert.Equal(t, DefaultPlatformFee, appointment.Fees.Platform)
	assert.Equal(t, 105, appointment.Fees.Total)

	require.NotNil(t, invoice)
	assert.Equal(t, appointment.ID, invoice.AppointmentID)
	assert.Equal(t, 105, invoice.Amount)
	assert.Equal(t, models.InvoicePayAtClinic, invoice.Status, "no payment provider configured")

	require.Len(t, appts.created, 1)
	assert.Equal(t, appointment.ID, appts.created[0].ID)

	// The session is discarded after a successful confirm.
	_, err = svc.GetSession(session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmConfiguredPlatformFee(t *testing.T) {
	svc, _ := newTestService(t)
	svc.PlatformFee = 12
	session := advanceToDetails(t, svc)
	_, err := svc.SetPatientDetails(session.SessionID, testPatient)
	require.NoError(t, err)

	appointment, _, err := svc.Confirm(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 12, appointment.Fees.Platform)
	assert.Equal(t, 112, appointment.Fees.Total)
}

func TestConfirmRequiresCompleteDetails(t *testing.T) {
	svc, appts := newTestService(t)
	session := advanceToDetails(t, svc)

	incomplete := testPatient
	incomplete.Phone = "   "
	_, err := svc.SetPatientDetails(session.SessionID, incomplete)
	require.NoError(t, err)

	_, _, err = svc.Confirm(session.SessionID)
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Empty(t, appts.created)

	// The draft survives a failed confirm at step 3.
	loaded, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPatientDetails, loaded.Step)
}

func TestConfirmWrongStep(t *testing.T) {
	svc, _ := newTestService(t)
	session := advanceToSchedule(t, svc, 3)

	_, _, err := svc.Confirm(session.SessionID)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestConfirmDoubleSubmission(t *testing.T) {
	svc, _ := newTestService(t)
	session := advanceToDetails(t, svc)
	_, err := svc.SetPatientDetails(session.SessionID, testPatient)
	require.NoError(t, err)

	// A confirm already holds the lock for this session.
	held, err := svc.Cache.SetNX(context.Background(), confirmLockPrefix+session.SessionID, 1, confirmLockTTL).Result()
	require.NoError(t, err)
	require.True(t, held)

	_, _, err = svc.Confirm(session.SessionID)
	assert.ErrorIs(t, err, ErrConfirmInFlight)

	// Once the in-flight confirm releases the lock, the retry goes through.
	require.NoError(t, svc.Cache.Del(context.Background(), confirmLockPrefix+session.SessionID).Err())
	_, _, err = svc.Confirm(session.SessionID)
	require.NoError(t, err)

	// And a repeat after success finds no session left.
	_, _, err = svc.Confirm(session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmPersistFailure(t *testing.T) {
	svc, appts := newTestService(t)
	appts.failing = true
	session := advanceToDetails(t, svc)
	_, err := svc.SetPatientDetails(session.SessionID, testPatient)
	require.NoError(t, err)

	_, _, err = svc.Confirm(session.SessionID)
	require.Error(t, err)

	// The session survives so the user can retry.
	_, err = svc.GetSession(session.SessionID)
	assert.NoError(t, err)
}

func TestComputeFees(t *testing.T) {
	fees := ComputeFees(150, 5)
	assert.Equal(t, models.FeeBreakdown{Consultation: 150, Platform: 5, Total: 155}, fees)
}
