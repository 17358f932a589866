// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Neha-Singh-j/E-commerce/internal/config"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	// Clean up old visitors every minute
	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getVisitor(ip)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimiters groups the per-concern limiters, with thresholds taken
// from configuration rather than hardcoded.
type RateLimiters struct {
	general *RateLimiter
	auth    *RateLimiter
	upload  *RateLimiter
}

func NewRateLimiters(cfg config.RateLimitConfig) *RateLimiters {
	authPerMin := atLeastOne(cfg.AuthPerMinute)
	uploadPerMin := atLeastOne(cfg.UploadPerMinute)

	return &RateLimiters{
		general: NewRateLimiter(rate.Limit(atLeastOne(cfg.GeneralPerSecond)), atLeastOne(cfg.GeneralBurst)),
		auth:    NewRateLimiter(rate.Every(time.Minute/time.Duration(authPerMin)), authPerMin),
		upload:  NewRateLimiter(rate.Every(time.Minute/time.Duration(uploadPerMin)), uploadPerMin),
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (l *RateLimiters) General() gin.HandlerFunc {
	return l.general.Middleware()
}

func (l *RateLimiters) Auth() gin.HandlerFunc {
	return l.auth.Middleware()
}

func (l *RateLimiters) Upload() gin.HandlerFunc {
	return l.upload.Middleware()
}
