package server

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Rate-limit response headers exposed to browsers.
const (
	HeaderRateLimitLimit     = "X-Middleware-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-Middleware-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-Middleware-RateLimit-Reset"
)

// sweep stale windows once the map grows past this many clients.
const sweepThreshold = 1024

type rateWindow struct {
	count int
	reset time.Time
}

// RateLimiter is a fixed-window request counter keyed by client address.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow counts a request for the client. It returns the remaining budget,
// the window's reset time, and whether the request is allowed.
func (rl *RateLimiter) Allow(client string) (remaining int, reset time.Time, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, exists := rl.windows[client]
	if !exists || !now.Before(w.reset) {
		if len(rl.windows) >= sweepThreshold {
			rl.sweepLocked(now)
		}
		w = &rateWindow{reset: now.Add(rl.window)}
		rl.windows[client] = w
	}

	if w.count >= rl.limit {
		return 0, w.reset, false
	}
	w.count++
	return rl.limit - w.count, w.reset, true
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for client, w := range rl.windows {
		if !now.Before(w.reset) {
			delete(rl.windows, client)
		}
	}
}

// Middleware enforces the limiter and stamps the rate-limit headers on
// every response that passed through it.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		remaining, reset, ok := rl.Allow(c.ClientIP())

		c.Header(HeaderRateLimitLimit, strconv.Itoa(rl.limit))
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(remaining))
		c.Header(HeaderRateLimitReset, strconv.FormatInt(reset.Unix(), 10))

		if !ok {
			secs := int64(time.Until(reset).Seconds())
			if secs < 1 {
				secs = 1
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{
				Type:    "error",
				Message: fmt.Sprintf("Too many generation requests. Please try again in %d seconds.", secs),
				Code:    CodeMiddlewareRateLimit,
				Reset:   secs,
			})
			return
		}

		c.Next()
	}
}
