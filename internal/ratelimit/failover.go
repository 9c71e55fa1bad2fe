package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// FailoverLimiter usa o primário (redis) enquanto ele responde e cai
// para o fallback em memória quando não. Tenta voltar ao primário a
// cada minuto.
type FailoverLimiter struct {
	primary  Limiter
	fallback Limiter
	logger   *zerolog.Logger

	isDown    atomic.Bool
	mu        sync.Mutex
	lastCheck time.Time
}

func NewFailoverLimiter(primary, fallback Limiter, logger *zerolog.Logger) *FailoverLimiter {
	return &FailoverLimiter{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (l *FailoverLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.isDown.Load() {
		ok, err := l.primary.Allow(ctx, key)
		if err == nil {
			return ok, nil
		}

		l.logger.Error().Err(err).Msg("primary rate limiter failed, falling back to memory")
		l.markDown()
	}

	if l.shouldRetryPrimary() {
		ok, err := l.primary.Allow(ctx, key)
		if err == nil {
			l.isDown.Store(false)
			return ok, nil
		}
	}

	return l.fallback.Allow(ctx, key)
}

func (l *FailoverLimiter) markDown() {
	l.isDown.Store(true)
	l.mu.Lock()
	l.lastCheck = time.Now()
	l.mu.Unlock()
}

func (l *FailoverLimiter) shouldRetryPrimary() bool {
	if !l.isDown.Load() {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCheck) > time.Minute {
		l.lastCheck = time.Now()
		return true
	}
	return false
}
