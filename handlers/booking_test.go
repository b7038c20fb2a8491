package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"apexcare/models"
	"apexcare/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubBookingService returns the configured error from every operation.
type stubBookingService struct {
	err error
}

func (s *stubBookingService) StartSession(userID string) (*models.BookingSession, error) {
	return &models.BookingSession{SessionID: "s1", Step: models.StepChooseDoctor}, s.err
}

func (s *stubBookingService) GetSession(sessionID string) (*models.BookingSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingSession{SessionID: sessionID, Step: models.StepChooseDoctor}, nil
}

func (s *stubBookingService) SelectDoctor(sessionID string, doctorID int) (*models.BookingSession, error) {
	return s.GetSession(sessionID)
}

func (s *stubBookingService) SetSchedule(sessionID, appointmentType, date, clock string) (*models.BookingSession, error) {
	return s.GetSession(sessionID)
}

func (s *stubBookingService) SetPatientDetails(sessionID string, details models.PatientDetails) (*models.BookingSession, error) {
	return s.GetSession(sessionID)
}

func (s *stubBookingService) Next(sessionID string) (*models.BookingSession, error) {
	return s.GetSession(sessionID)
}

func (s *stubBookingService) Back(sessionID string) (*models.BookingSession, error) {
	return s.GetSession(sessionID)
}

func (s *stubBookingService) Confirm(sessionID string) (*models.Appointment, *models.Invoice, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return &models.Appointment{ID: "a1"}, &models.Invoice{InvoiceID: "i1"}, nil
}

func (s *stubBookingService) CancelSession(sessionID string) error { return s.err }

func (s *stubBookingService) CandidateDates() []string { return []string{"2025-06-03"} }

func bookingTestRouter(svc booking.BookingSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.POST("/api/booking/session/:sessionID/confirm", h.ConfirmBooking)
	return r
}

func TestBookingErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown session", err: booking.ErrSessionNotFound, wantCode: http.StatusNotFound},
		{name: "incomplete step", err: booking.ErrStepIncomplete, wantCode: http.StatusUnprocessableEntity},
		{name: "wrong step", err: booking.ErrWrongStep, wantCode: http.StatusUnprocessableEntity},
		{name: "confirm in flight", err: booking.ErrConfirmInFlight, wantCode: http.StatusConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := bookingTestRouter(&stubBookingService{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking/session/s1/confirm", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestBookingGetSessionOK(t *testing.T) {
	r := bookingTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/session/s1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessionId":"s1"`)
}

func TestBookingConfirmOK(t *testing.T) {
	r := bookingTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session/s1/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booking"`)
	assert.Contains(t, w.Body.String(), `"invoice"`)
}
