package http

import (
	"sync"
	"time"
)

const (
	staleBucketThreshold = 1 * time.Hour
	cleanupInterval      = 30 * time.Minute
)

type bucket struct {
	remaining  int
	windowFrom time.Time
}

// RateLimiter allows capacity requests per caller per window. Quoting is
// cheap but sits behind consumer-facing pages, so abusive callers are cut off
// per IP rather than globally.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	done     chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		done:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.dropStale()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) dropStale() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for caller, b := range r.buckets {
		if now.Sub(b.windowFrom) > staleBucketThreshold {
			delete(r.buckets, caller)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.done)
}

// Allow reports whether the caller may proceed, and when not, how long until
// its window resets.
func (r *RateLimiter) Allow(caller string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b, exists := r.buckets[caller]
	if !exists {
		r.buckets[caller] = &bucket{
			remaining:  r.capacity - 1,
			windowFrom: now,
		}
		return true, 0
	}

	if now.Sub(b.windowFrom) >= r.window {
		b.remaining = r.capacity
		b.windowFrom = now
	}

	if b.remaining <= 0 {
		return false, b.windowFrom.Add(r.window).Sub(now)
	}

	b.remaining--
	return true, 0
}
