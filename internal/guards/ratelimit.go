package guards

import (
	"sync"
	"time"
)

const (
	// RateLimitWindow is the fixed counting window per user.
	RateLimitWindow = time.Minute

	// RateLimitMaxRequests is the number of requests allowed per window.
	RateLimitMaxRequests = 30
)

type rateWindow struct {
	start time.Time
	count int
}

// RateLimiter is a fixed-window per-user counter. Expiry is lazy: a user's
// window resets on their next access after it elapses. Entries for users who
// never come back are kept indefinitely; this growth characteristic is a
// known limitation of the design, not an oversight.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	entries map[string]*rateWindow
	audit   *AuditLogger

	now func() time.Time
}

func NewRateLimiter(audit *AuditLogger) *RateLimiter {
	return &RateLimiter{
		window:  RateLimitWindow,
		max:     RateLimitMaxRequests,
		entries: make(map[string]*rateWindow),
		audit:   audit,
		now:     time.Now,
	}
}

// Allow reports whether the user may make another request in the current
// window. It never fails; a rejected request is audit-logged.
func (l *RateLimiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	entry, ok := l.entries[userID]
	if !ok || now.Sub(entry.start) >= l.window {
		l.entries[userID] = &rateWindow{start: now, count: 1}
		return true
	}

	if entry.count >= l.max {
		l.audit.Record(userID, "rate_limit", OutcomeDenied)
		return false
	}

	entry.count++
	return true
}
