package quota

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter implements Limiter with in-process counters. It backs tests
// and single-instance deployments where Redis is unavailable.
type MemoryLimiter struct {
	limits Limits
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

// NewMemoryLimiter builds an in-process limiter.
func NewMemoryLimiter(limits Limits) *MemoryLimiter {
	return &MemoryLimiter{
		limits:  limits,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, actionKind, callerID string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := quotaKey(actionKind, callerID)
	now := l.now()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(l.limits.Window)}
		l.windows[key] = w
	}
	w.count++

	max := l.limits.max(actionKind)
	if w.count > max {
		return Decision{Allowed: false, Remaining: 0, RetryAfter: w.resetAt.Sub(now)}, nil
	}
	return Decision{Allowed: true, Remaining: max - w.count}, nil
}
