// Package ratelimit provides a per-user token bucket limiter for inbound
// bot traffic.
package ratelimit

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/time/rate"
)

// UserRateLimiter manages per-user rate limiting. Each user id gets its own
// independent token bucket, created lazily on first use.
type UserRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// New creates a per-user limiter.
// rps: sustained requests per second allowed per user.
// burst: tokens available immediately per user.
func New(rps float64, burst int) *UserRateLimiter {
	return &UserRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether the user may proceed right now, consuming a token if
// so. Never blocks; callers drop or reject over-limit traffic.
func (rl *UserRateLimiter) Allow(userID int64) bool {
	return rl.getLimiter(strconv.FormatInt(userID, 10)).Allow()
}

// Wait blocks until the user may proceed or the context is canceled.
func (rl *UserRateLimiter) Wait(ctx context.Context, userID int64) error {
	return rl.getLimiter(strconv.FormatInt(userID, 10)).Wait(ctx)
}

// getLimiter returns the limiter for a key, creating one if needed.
func (rl *UserRateLimiter) getLimiter(key string) *rate.Limiter {
	// Fast path: read lock.
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring the write lock.
	if limiter, exists = rl.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[key] = limiter
	return limiter
}
