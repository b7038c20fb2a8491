package handlers

import (
	"net/http"
	"strconv"

	"apexcare/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the public doctor directory.
type DoctorHandler struct {
	Directory directory.DirectoryService
	logger    *zap.Logger
}

// NewDoctorHandler creates a new DoctorHandler instance.
func NewDoctorHandler(svc directory.DirectoryService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Directory: svc, logger: logger}
}

// ListDoctorsHandler returns the filtered roster. An empty result is a
// valid response, not an error.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	searchTerm := c.Query("search")
	specialty := c.Query("specialty")

	doctors, err := h.Directory.ListDoctors(searchTerm, specialty)
	if err != nil {
		h.logger.Error("failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "count": len(doctors)})
}

// GetDoctorHandler returns one doctor with its current availability status.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	doctor, err := h.Directory.GetDoctor(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// ListSpecialtiesHandler returns the distinct specialties for the filter dropdown.
func (h *DoctorHandler) ListSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Directory.Specialties()
	if err != nil {
		h.logger.Error("failed to list specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load specialties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}
