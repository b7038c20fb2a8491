package handlers

import (
	"net/http"

	"apexcare/models"
	"apexcare/services/user"
	"apexcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves signup, signin and session lifecycle endpoints.
type AuthHandler struct {
	Service user.UserService
	logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, logger: logger}
}

// cookieMaxAge matches the token lifetime (24h).
const cookieMaxAge = 24 * 60 * 60

// RegisterHandler creates an account and signs the caller in.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input models.UserRegistrationData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Register(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.setAuthCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates credentials and opens a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setAuthCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler clears every credential slot: the auth-cache entries and
// the authToken cookie.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.Logout(userID); err != nil {
		h.logger.Error("logout failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}

	c.SetCookie(utils.AuthTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// DeleteAccountHandler removes the authenticated account and ends the
// session.
func (h *AuthHandler) DeleteAccountHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.DeleteAccount(userID); err != nil {
		h.logger.Error("account deletion failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	c.SetCookie(utils.AuthTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// MeHandler returns the authenticated account.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	usr, err := h.Service.GetByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateFCMTokenHandler registers a device token for push notifications.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.UpdateFCMToken(c.GetString("userID"), input.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device token updated"})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(utils.AuthTokenCookie, token, cookieMaxAge, "/", "", false, true)
}
