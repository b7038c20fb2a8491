package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"apexcare/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddlewareUsesConfiguredLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.MaxRequestsPerMin = 3
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = 0 })

	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	doRequest := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", ip)
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest("10.0.0.7"), "request %d within budget", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest("10.0.0.7"))

	// Another client keeps its own budget.
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.8"))
}
