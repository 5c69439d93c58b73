package mb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterBurstThenThrottle(t *testing.T) {
	limiter := newRateLimiter()

	// Первые 5 запросов проходят без ожидания
	for i := 0; i < rateLimitBurst; i++ {
		assert.True(t, limiter.Allow(), "request %d should pass within burst", i+1)
	}

	// Шестой упирается в пополнение 1 токен/сек
	assert.False(t, limiter.Allow())
}

func TestAcquireNoopWithoutLimiter(t *testing.T) {
	c := New()
	c.DropRateLimit()

	start := time.Now()
	for i := 0; i < 20; i++ {
		require.NoError(t, c.acquire(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestAcquireRespectsContextCancellation(t *testing.T) {
	c := New()

	// Выбираем burst
	for i := 0; i < rateLimitBurst; i++ {
		require.NoError(t, c.acquire(context.Background()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Следующий acquire ждал бы ~1 секунду, но контекст отменяется раньше
	err := c.acquire(ctx)
	assert.Error(t, err)
}
