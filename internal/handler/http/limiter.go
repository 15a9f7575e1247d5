package http

import (
	"sync"
	"time"
)

// attemptLimiter counts failures per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	now      func() time.Time
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:    limit,
		window:   window,
		now:      time.Now,
		failures: make(map[string][]time.Time),
	}
}

// Allow reports whether key still has attempts left.
func (l *attemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(key)) < l.limit
}

// Fail records a failed attempt for key.
func (l *attemptLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures[key] = append(l.prune(key), l.now())
}

// Reset forgets every failure of key.
func (l *attemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.failures, key)
}

// prune drops failures older than the window. Must be called with mu held.
func (l *attemptLimiter) prune(key string) []time.Time {
	cutoff := l.now().Add(-l.window)
	failures := l.failures[key]

	i := 0
	for i < len(failures) && !failures[i].After(cutoff) {
		i++
	}
	failures = failures[i:]

	if len(failures) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = failures
	return failures
}
