package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func ping(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Hour)
	router := limitedRouter(limiter)

	require.Equal(t, http.StatusOK, ping(router).Code)
	require.Equal(t, http.StatusOK, ping(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router).Code)
}

func TestRateLimiterSetRateAppliesToExistingVisitors(t *testing.T) {
	limiter := NewRateLimiter(100, time.Hour)
	router := limitedRouter(limiter)

	// 访客先以宽松配额出现
	require.Equal(t, http.StatusOK, ping(router).Code)

	// 热加载收紧后，已有访客的剩余配额被压到新的burst
	limiter.SetRate(1, time.Hour)
	require.Equal(t, http.StatusOK, ping(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router).Code)
}

func TestCORSOnlyAllowsListedOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
