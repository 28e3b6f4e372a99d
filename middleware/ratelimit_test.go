package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedRouter(limit int, window time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiter(limit, window))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func hit(router *gin.Engine) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Code
}

func TestRateLimiterBlocksPastLimit(t *testing.T) {
	router := limitedRouter(2, time.Minute)

	require.Equal(t, http.StatusOK, hit(router))
	require.Equal(t, http.StatusOK, hit(router))
	assert.Equal(t, http.StatusTooManyRequests, hit(router))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	router := limitedRouter(1, 30*time.Millisecond)

	require.Equal(t, http.StatusOK, hit(router))
	require.Equal(t, http.StatusTooManyRequests, hit(router))

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(router))
}

func TestRateLimiterSweepsExpiredWindows(t *testing.T) {
	rl := &rateLimiter{
		requests: map[string]*clientWindow{
			"stale": {count: 1, resetTime: time.Now().Add(-time.Second)},
			"live":  {count: 1, resetTime: time.Now().Add(time.Minute)},
		},
		limit:  1,
		window: time.Minute,
	}

	rl.mu.Lock()
	rl.sweep(time.Now())
	rl.mu.Unlock()

	assert.NotContains(t, rl.requests, "stale")
	assert.Contains(t, rl.requests, "live")
	assert.True(t, rl.nextSweep.After(time.Now().Add(30*time.Second)))
}

func TestRateLimiterSpawnsNoGoroutines(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 50; i++ {
		_ = RateLimiter(1, time.Minute)
	}

	assert.LessOrEqual(t, runtime.NumGoroutine(), before+2)
}
