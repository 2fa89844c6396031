package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translation-service/internal/domain/dto"
)

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitRejectsBeyondBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.Status)
	assert.Equal(t, "Too Many Requests", body.Error)
}

func TestRateLimitWindowReset(t *testing.T) {
	rl := NewShardedRateLimiter(1, 10*time.Millisecond, 4)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)

	allowed, _ = rl.checkRateLimit("10.0.0.1")
	assert.False(t, allowed)

	time.Sleep(20 * time.Millisecond)

	allowed, _ = rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)
}

func TestRateLimitIndependentIdentifiers(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)

	allowed, _ = rl.checkRateLimit("10.0.0.2")
	assert.True(t, allowed)

	allowed, _ = rl.checkRateLimit("10.0.0.1")
	assert.False(t, allowed)
}

func TestCleanupExpiredVisitors(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Millisecond, 4)
	defer rl.Stop()

	rl.checkRateLimit("10.0.0.1")
	time.Sleep(5 * time.Millisecond)
	rl.cleanupExpired()

	for _, shard := range rl.shards {
		shard.mu.Lock()
		assert.Empty(t, shard.visitors)
		shard.mu.Unlock()
	}
}
