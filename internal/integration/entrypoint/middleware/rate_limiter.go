// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger-reports/config"
	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/dto"
)

const (
	defaultMaxRequests = 120
	defaultWindow      = time.Minute
)

// clientWindow tracks the requests of a single client inside the current window.
type clientWindow struct {
	requests  int
	resetTime time.Time
}

// RateLimiter limits report requests per client IP with a fixed window.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientWindow
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a rate limiter from configuration.
// Non-positive values fall back to the defaults.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	maxRequests := cfg.MaxRequests
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultWindow
	}

	return &RateLimiter{
		clients:     make(map[string]*clientWindow),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(clientIP)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow records a request for key. When the key is over its quota it returns
// false together with the time left until the window resets.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	window, exists := rl.clients[key]
	if !exists || !now.Before(window.resetTime) {
		rl.clients[key] = &clientWindow{
			requests:  1,
			resetTime: now.Add(rl.window),
		}
		return true, 0
	}

	if window.requests < rl.maxRequests {
		window.requests++
		return true, 0
	}

	return false, window.resetTime.Sub(now)
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.clients = make(map[string]*clientWindow)
}

// Cleanup removes expired client windows.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, window := range rl.clients {
		if !now.Before(window.resetTime) {
			delete(rl.clients, key)
		}
	}
}

// StartCleanup runs Cleanup once per window until ctx is done.
func (rl *RateLimiter) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(rl.window)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}
