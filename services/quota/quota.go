package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Action kinds with per-caller quotas.
const (
	ActionPhoneLookup = "phone-lookup"
	ActionCodeSend    = "code-send"
	ActionCodeCheck   = "code-check"
)

// Decision is the outcome of a quota check. When Allowed is false,
// RetryAfter is the time until the caller's window resets.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter enforces per-caller quotas keyed by (actionKind, callerID). It is
// checked before any vendor call on the rate-limited steps; an exhausted
// quota means the vendor is never called.
type Limiter interface {
	Allow(ctx context.Context, actionKind, callerID string) (Decision, error)
}

// Limits configures the maximum attempts per action kind within Window.
type Limits struct {
	Window  time.Duration
	PerKind map[string]int
}

func (l Limits) max(actionKind string) int {
	if n, ok := l.PerKind[actionKind]; ok && n > 0 {
		return n
	}
	// Unconfigured kinds get a conservative default rather than a free pass.
	return 3
}

// RedisLimiter implements Limiter on Redis INCR counters with a fixed-expiry
// window, shared across all server instances.
type RedisLimiter struct {
	client *redis.Client
	limits Limits
}

// NewRedisLimiter builds a limiter on the given Redis client.
func NewRedisLimiter(client *redis.Client, limits Limits) *RedisLimiter {
	return &RedisLimiter{client: client, limits: limits}
}

func quotaKey(actionKind, callerID string) string {
	return fmt.Sprintf("quota:%s:%s", actionKind, callerID)
}

func (l *RedisLimiter) Allow(ctx context.Context, actionKind, callerID string) (Decision, error) {
	key := quotaKey(actionKind, callerID)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("quota: failed to increment counter: %w", err)
	}
	if count == 1 {
		// First attempt in this window; start the clock.
		if err := l.client.Expire(ctx, key, l.limits.Window).Err(); err != nil {
			return Decision{}, fmt.Errorf("quota: failed to set window expiry: %w", err)
		}
	}

	max := int64(l.limits.max(actionKind))
	if count > max {
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil || ttl <= 0 {
			ttl = l.limits.Window
		}
		return Decision{Allowed: false, Remaining: 0, RetryAfter: ttl}, nil
	}

	return Decision{Allowed: true, Remaining: int(max - count)}, nil
}
