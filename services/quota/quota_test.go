package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiter(limits Limits) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(limits)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiterEnforcesWindow(t *testing.T) {
	l, _ := testLimiter(Limits{
		Window:  10 * time.Minute,
		PerKind: map[string]int{ActionCodeSend: 3},
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, ActionCodeSend, "prov-1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "attempt %d should be allowed", i+1)
		assert.Equal(t, 2-i, d.Remaining)
	}

	d, err := l.Allow(ctx, ActionCodeSend, "prov-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Zero(t, d.Remaining)
	assert.Positive(t, d.RetryAfter)
	assert.LessOrEqual(t, d.RetryAfter, 10*time.Minute)
}

func TestMemoryLimiterResetsAfterWindow(t *testing.T) {
	l, now := testLimiter(Limits{
		Window:  10 * time.Minute,
		PerKind: map[string]int{ActionCodeCheck: 2},
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, ActionCodeCheck, "prov-1")
		require.NoError(t, err)
		require.True(t, d.Allowed)
	}
	d, err := l.Allow(ctx, ActionCodeCheck, "prov-1")
	require.NoError(t, err)
	require.False(t, d.Allowed)

	*now = now.Add(11 * time.Minute)
	d, err = l.Allow(ctx, ActionCodeCheck, "prov-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "a fresh window starts after expiry")
}

func TestMemoryLimiterKeysByActionAndCaller(t *testing.T) {
	l, _ := testLimiter(Limits{
		Window:  10 * time.Minute,
		PerKind: map[string]int{ActionCodeSend: 1, ActionCodeCheck: 1},
	})
	ctx := context.Background()

	d, _ := l.Allow(ctx, ActionCodeSend, "prov-1")
	require.True(t, d.Allowed)
	d, _ = l.Allow(ctx, ActionCodeSend, "prov-1")
	require.False(t, d.Allowed)

	// A different action kind for the same caller has its own budget.
	d, _ = l.Allow(ctx, ActionCodeCheck, "prov-1")
	assert.True(t, d.Allowed)

	// A different caller for the same action has its own budget.
	d, _ = l.Allow(ctx, ActionCodeSend, "prov-2")
	assert.True(t, d.Allowed)
}

func TestLimitsDefaultForUnconfiguredKind(t *testing.T) {
	limits := Limits{Window: time.Minute}
	assert.Equal(t, 3, limits.max("something-new"))

	limits.PerKind = map[string]int{"something-new": 0}
	assert.Equal(t, 3, limits.max("something-new"), "zero config falls back to the default")

	limits.PerKind["something-new"] = 7
	assert.Equal(t, 7, limits.max("something-new"))
}

func TestQuotaKeyShape(t *testing.T) {
	assert.Equal(t, "quota:code-send:prov-1", quotaKey(ActionCodeSend, "prov-1"))
}
