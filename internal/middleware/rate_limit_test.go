package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(rl *ShardedRateLimiter, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(handler)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()
	router := setupRateLimitRouter(rl, rl.RateLimit())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimit_Headers(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	defer rl.Stop()
	router := setupRateLimitRouter(rl, rl.RateLimit())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)
	defer rl.Stop()
	router := setupRateLimitRouter(rl, rl.RateLimit())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(60 * time.Millisecond)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientRateLimit_SeparatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	// Simulate the JWT middleware having identified the client.
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-Client"); id != "" {
			c.Set("client_id", id)
		}
		c.Next()
	})
	router.Use(rl.ClientRateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	send := func(client string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		if client != "" {
			req.Header.Set("X-Test-Client", client)
		}
		router.ServeHTTP(w, req)
		return w.Code
	}

	// Each client has its own budget.
	assert.Equal(t, http.StatusOK, send("client-1"))
	assert.Equal(t, http.StatusOK, send("client-2"))
	assert.Equal(t, http.StatusTooManyRequests, send("client-1"))

	// Anonymous callers fall back to a shared per-IP budget.
	assert.Equal(t, http.StatusOK, send(""))
	assert.Equal(t, http.StatusTooManyRequests, send(""))
}

func TestShardedRateLimiter_Stats(t *testing.T) {
	rl := NewShardedRateLimiter(10, time.Minute, 4)
	defer rl.Stop()

	rl.checkRateLimit("a")
	rl.checkRateLimit("b")
	rl.checkRateLimit("c")

	total, perShard := rl.Stats()
	assert.Equal(t, 3, total)
	assert.Len(t, perShard, 4)
}

func TestShardedRateLimiter_CleanupExpired(t *testing.T) {
	rl := NewShardedRateLimiter(10, 10*time.Millisecond, 4)
	defer rl.Stop()

	rl.checkRateLimit("a")
	total, _ := rl.Stats()
	assert.Equal(t, 1, total)

	time.Sleep(30 * time.Millisecond)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Equal(t, 0, total)
}

func TestShardedRateLimiter_DefaultShardCount(t *testing.T) {
	rl := NewShardedRateLimiter(10, time.Minute, 0)
	defer rl.Stop()
	assert.Equal(t, defaultNumShards, rl.numShards)
}
