package mb

import (
	"context"

	"golang.org/x/time/rate"
)

// Лимиты MusicBrainz API (согласно документации):
// в среднем 1 запрос/сек на клиента, короткие всплески допустимы.
const (
	rateLimitPerSec = 1
	rateLimitBurst  = 5
)

// newRateLimiter создает token bucket под гайдлайны MB.
//
// 5 "свободных" запросов в burst, дальше пополнение 1 токен/сек.
// Учитывайте это при проектировании приложений: первые 5 запросов бесплатны.
func newRateLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rateLimitPerSec), rateLimitBurst)
}

// acquire блокирует горутину пока не освободится токен.
//
// При отключенном лимитере — no-op. Порядок пробуждения конкурентных
// ожидающих не гарантируется, ограничивается только суммарный темп.
func (c *Client) acquire(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
