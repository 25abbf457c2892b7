package cache

import (
	"time"

	"merchant/pkg/utils"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key in the cache: limit tokens refilled
// evenly over window. A bucket is dropped one window after it was created, when a
// fresh bucket would be full anyway.
type RateLimiter struct {
	cache  *Cache
	every  rate.Limit
	burst  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &RateLimiter{
		cache:  InitStorage(),
		every:  rate.Every(window / time.Duration(limit)),
		burst:  limit,
		window: window,
	}
}

// Exceeded takes a token for key and returns true when none is left.
func (r *RateLimiter) Exceeded(key string) bool {
	v := r.cache.Load(key)
	if v == nil {
		v = r.cache.LoadOrSet(key, rate.NewLimiter(r.every, r.burst), r.window)
	}

	limiter, err := utils.SafeCast[*rate.Limiter](v)
	if err != nil {
		return true
	}
	return !limiter.Allow()
}
