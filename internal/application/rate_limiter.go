package application

import (
	"sync"
	"time"
)

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window limiter keyed by client identifier.
type RateLimiter struct {
	limits map[string]*rateLimitEntry
	mu     sync.Mutex
	window time.Duration
	limit  int
	now    func() time.Time
	done   chan struct{}
	once   sync.Once
}

// NewRateLimiter allows limit requests per identifier in each window and
// starts a background sweep of expired entries. Call Stop to end it.
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		limits: make(map[string]*rateLimitEntry),
		window: window,
		limit:  limit,
		now:    time.Now,
		done:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow records a request for identifier. When the limit is reached it
// returns false and the time left until the window resets.
func (rl *RateLimiter) Allow(identifier string) (bool, time.Duration) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.limits[identifier]
	if !exists || !now.Before(entry.resetTime) {
		rl.limits[identifier] = &rateLimitEntry{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true, 0
	}

	if entry.count >= rl.limit {
		return false, entry.resetTime.Sub(now)
	}

	entry.count++
	return true, 0
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.limits {
		if !now.Before(entry.resetTime) {
			delete(rl.limits, key)
		}
	}
}
