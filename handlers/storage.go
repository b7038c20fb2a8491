package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"apexcare/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageHandler serves medical report uploads and downloads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

const reportsFolder = "reports"

// UploadReportHandler stores an uploaded medical report and returns its identifier.
func (h *StorageHandler) UploadReportHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	// The client-supplied filename is never trusted as a path; the upload
	// lands under a generated name inside the temp dir.
	tempName := uuid.New().String() + filepath.Ext(filepath.Base(fileHeader.Filename))
	tempFilePath := filepath.Join(os.TempDir(), tempName)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	userFolder := reportsFolder + "/" + c.GetString("userID")
	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, userFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId":    publicID,
		"downloadUrl": downloadURL,
	})
}

// GetReportURLHandler resolves the download URL for a stored report.
func (h *StorageHandler) GetReportURLHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report storage is not configured"})
		return
	}

	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}

// DeleteReportHandler removes a stored report.
func (h *StorageHandler) DeleteReportHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report storage is not configured"})
		return
	}

	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}
