package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP with stricter limits on
// credential endpoints and the chat proxy. Each IP gets an independent
// token bucket per lane, so a client warmed up on cheap endpoints still
// faces the strict limits on /login and /chat.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.RWMutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its visitor reaper.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the throttling middleware.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lane, limit, burst := laneFor(c.Request().URL.Path)

			if !rl.allow(c.RealIP()+":"+lane, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error": "Rate limit exceeded",
					"code":  "RATE_LIMIT_EXCEEDED",
				})
			}

			return next(c)
		}
	}
}

// laneFor selects the throttling lane for a request path.
func laneFor(path string) (string, rate.Limit, int) {
	switch {
	case strings.Contains(path, "/login"):
		return "login", rate.Every(time.Second), 10
	case strings.Contains(path, "/register"):
		return "register", rate.Every(time.Second), 5
	case strings.Contains(path, "/chat"):
		// Model inference is expensive upstream.
		return "chat", rate.Every(2 * time.Second), 5
	default:
		return "default", rate.Every(50 * time.Millisecond), 40
	}
}

func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(limit, burst)}
		rl.visitors[key] = v
	}

	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
