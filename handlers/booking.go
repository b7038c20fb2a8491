package handlers

import (
	"errors"
	"net/http"

	"apexcare/config"
	"apexcare/models"
	"apexcare/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking wizard endpoints.
type BookingHandler struct {
	Service booking.BookingSessionService
	logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, logger: logger}
}

// StartSession opens a fresh wizard session at step 1 and returns the
// candidate dates alongside it. BOOKING_DATE_COUNT caps how many dates
// the client is shown; the full window stays bookable.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Service.StartSession(c.GetString("userID"))
	if err != nil {
		h.logger.Error("failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}

	dates := h.Service.CandidateDates()
	if n := config.AppConfig.BookingDateCount; n > 0 && n < len(dates) {
		dates = dates[:n]
	}
	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID:      session.SessionID,
		Step:           session.Step,
		Draft:          &session.Draft,
		CandidateDates: dates,
	})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// SelectDoctor records the step-1 choice.
func (h *BookingHandler) SelectDoctor(c *gin.Context) {
	var input struct {
		DoctorID int `json:"doctorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectDoctor(c.Param("sessionID"), input.DoctorID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// SetSchedule records the step-2 choices.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var input struct {
		AppointmentType string `json:"appointmentType" binding:"required"`
		Date            string `json:"date" binding:"required"`
		Time            string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SetSchedule(c.Param("sessionID"), input.AppointmentType, input.Date, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// SetDetails records the step-3 patient intake fields.
func (h *BookingHandler) SetDetails(c *gin.Context) {
	var input models.PatientDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SetPatientDetails(c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// NextStep advances the wizard when the current gate holds.
func (h *BookingHandler) NextStep(c *gin.Context) {
	session, err := h.Service.Next(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// PrevStep moves the wizard one step back, draft intact.
func (h *BookingHandler) PrevStep(c *gin.Context) {
	session, err := h.Service.Back(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// ConfirmBooking finalizes the wizard into a persisted appointment.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	appointment, invoice, err := h.Service.Confirm(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{
		Booking: appointment,
		Invoice: invoice,
	})
}

// CancelSession discards the wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func sessionResponse(session *models.BookingSession) models.BookingResponse {
	return models.BookingResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
		Draft:     &session.Draft,
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrStepIncomplete), errors.Is(err, booking.ErrWrongStep):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrConfirmInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
