package handlers

import (
	"net/http"

	"apexcare/services/appointment"
	"apexcare/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the patient and doctor dashboard endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Users   user.UserService
	logger  *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler instance.
func NewAppointmentHandler(svc appointment.AppointmentService, users user.UserService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Users: users, logger: logger}
}

// ListMyAppointmentsHandler lists the authenticated patient's bookings.
func (h *AppointmentHandler) ListMyAppointmentsHandler(c *gin.Context) {
	appointments, err := h.Service.ListForPatient(c.GetString("userID"))
	if err != nil {
		h.logger.Error("failed to list patient appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CancelAppointmentHandler cancels one of the patient's confirmed bookings.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

// ListDoctorAppointmentsHandler lists the authenticated doctor's bookings.
func (h *AppointmentHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	doctorID, ok := h.doctorID(c)
	if !ok {
		return
	}
	appointments, err := h.Service.ListForDoctor(doctorID)
	if err != nil {
		h.logger.Error("failed to list doctor appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CompleteAppointmentHandler marks one of the doctor's bookings completed.
func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	doctorID, ok := h.doctorID(c)
	if !ok {
		return
	}
	if err := h.Service.Complete(doctorID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment completed"})
}

// IssuePrescriptionHandler records a prescription against a completed appointment.
func (h *AppointmentHandler) IssuePrescriptionHandler(c *gin.Context) {
	doctorID, ok := h.doctorID(c)
	if !ok {
		return
	}
	var input appointment.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.Users.GetByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	prescription, err := h.Service.IssuePrescription(doctorID, usr.Name, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, prescription)
}

// ListMyPrescriptionsHandler lists the patient's prescriptions.
func (h *AppointmentHandler) ListMyPrescriptionsHandler(c *gin.Context) {
	prescriptions, err := h.Service.PrescriptionsForPatient(c.GetString("userID"))
	if err != nil {
		h.logger.Error("failed to list prescriptions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load prescriptions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": prescriptions})
}

// ListIssuedPrescriptionsHandler lists the prescriptions the doctor issued.
func (h *AppointmentHandler) ListIssuedPrescriptionsHandler(c *gin.Context) {
	doctorID, ok := h.doctorID(c)
	if !ok {
		return
	}
	prescriptions, err := h.Service.PrescriptionsForDoctor(doctorID)
	if err != nil {
		h.logger.Error("failed to list issued prescriptions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load prescriptions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": prescriptions})
}

// doctorID resolves the roster id linked to the authenticated doctor account.
func (h *AppointmentHandler) doctorID(c *gin.Context) (int, bool) {
	usr, err := h.Users.GetByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return 0, false
	}
	if usr.DoctorID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "account is not linked to a roster entry"})
		return 0, false
	}
	return usr.DoctorID, true
}
