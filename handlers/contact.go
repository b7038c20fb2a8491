package handlers

import (
	"net/http"

	"apexcare/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the public contact form. The message terminates
// here: logged and acknowledged, no downstream endpoint exists.
type ContactHandler struct {
	logger *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(logger *zap.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

// SubmitHandler validates and acknowledges a contact message.
func (h *ContactHandler) SubmitHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	h.logger.Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject))

	c.JSON(http.StatusOK, gin.H{"message": "Thanks for reaching out. We'll get back to you shortly."})
}
