package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateLimiter struct {
	requests  map[string]*clientWindow
	mu        sync.Mutex
	limit     int
	window    time.Duration
	nextSweep time.Time
}

type clientWindow struct {
	count     int
	resetTime time.Time
}

// RateLimiter enforces a fixed per-IP request budget over a rolling window.
// Stale entries are swept inline on the request path, at most once per
// window, so the limiter holds no background goroutine.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	rl := &rateLimiter{
		requests:  make(map[string]*clientWindow),
		limit:     limit,
		window:    window,
		nextSweep: time.Now().Add(window),
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		rl.sweep(now)

		client, exists := rl.requests[ip]
		if !exists || now.After(client.resetTime) {
			rl.requests[ip] = &clientWindow{count: 1, resetTime: now.Add(rl.window)}
			rl.mu.Unlock()
			c.Next()
			return
		}

		if client.count >= rl.limit {
			retryAfter := client.resetTime.Sub(now).Seconds()
			rl.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}

		client.count++
		rl.mu.Unlock()
		c.Next()
	}
}

// sweep drops expired windows. Caller holds the lock.
func (rl *rateLimiter) sweep(now time.Time) {
	if now.Before(rl.nextSweep) {
		return
	}
	for ip, client := range rl.requests {
		if now.After(client.resetTime) {
			delete(rl.requests, ip)
		}
	}
	rl.nextSweep = now.Add(rl.window)
}
