package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// rateLimiter hands each client IP its own token bucket refilling at
// limit requests per window. A non-positive limit disables it.
//
// Buckets idle for a full window are dropped; a bucket refills completely
// in that time, so a fresh one behaves the same.
type rateLimiter struct {
	mu      sync.Mutex
	clients *cache.Cache
	every   rate.Limit
	burst   int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{burst: limit}
	if limit > 0 && window > 0 {
		rl.every = rate.Every(window / time.Duration(limit))
		rl.clients = cache.New(window, window)
	}
	return rl
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	var l *rate.Limiter
	if v, found := rl.clients.Get(key); found {
		l = v.(*rate.Limiter)
	} else {
		l = rate.NewLimiter(rl.every, rl.burst)
	}
	// Re-set on every hit so the idle timer restarts.
	rl.clients.Set(key, l, cache.DefaultExpiration)
	return l
}

func (rl *rateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.clients == nil || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if !rl.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
