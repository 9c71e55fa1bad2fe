package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decide se uma tentativa identificada por key (IP do
// cliente, no login) ainda cabe na janela.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter mantém um rate.Limiter por chave, em processo.
type MemoryLimiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
}

// NewMemoryLimiter aceita `attempts` tentativas por `window`, com
// burst igual ao total da janela.
func NewMemoryLimiter(attempts int, window time.Duration) *MemoryLimiter {
	if attempts <= 0 {
		attempts = 5
	}
	if window <= 0 {
		window = time.Minute
	}

	return &MemoryLimiter{
		limit: rate.Every(window / time.Duration(attempts)),
		burst: attempts,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.getLimiter(key).Allow(), nil
}

func (l *MemoryLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}
