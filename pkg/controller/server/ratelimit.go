package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterPool keeps one token bucket per client address. Buckets refill at
// max/window and allow a burst of max, so a client gets at most max requests
// in any window once the bucket is drained.
type limiterPool struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterPool(window time.Duration, max int) *limiterPool {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	return &limiterPool{
		limiters:  map[string]*clientLimiter{},
		limit:     rate.Every(window / time.Duration(max)),
		burst:     max,
		ttl:       3 * window,
		lastSweep: time.Now(),
	}
}

func (x *limiterPool) allow(key string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := time.Now()
	x.sweep(now)

	entry, ok := x.limiters[key]
	if !ok {
		entry = &clientLimiter{
			limiter: rate.NewLimiter(x.limit, x.burst),
		}
		x.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.Allow()
}

// sweep drops buckets idle longer than ttl. Called with the lock held.
func (x *limiterPool) sweep(now time.Time) {
	if now.Sub(x.lastSweep) < x.ttl {
		return
	}
	x.lastSweep = now

	for key, entry := range x.limiters {
		if now.Sub(entry.lastSeen) > x.ttl {
			delete(x.limiters, key)
		}
	}
}
