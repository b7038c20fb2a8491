package middleware

import (
	"context"
	"net/http"
	"strings"

	"apexcare/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates a request from either the Authorization
// bearer header or the authToken cookie: a caller is authenticated when
// any credential slot holds a live token. The token must parse and its
// hash must still occupy the user's auth-cache slot, so logout (which
// clears the slot) immediately invalidates old tokens.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(context.Background(), utils.AuthCachePrefix+userID).Result()
		if err != nil || cachedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token revoked or expired",
			})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group to one account role. Must run after
// JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(utils.AuthTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	return ""
}
