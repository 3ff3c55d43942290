package ratelimit

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Store keeps the last-attempt timestamp (epoch seconds) per client key.
// Implementations do not need to expire stale entries; the limiter only
// compares against the configured window.
type Store interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, ts int64) error
}

// Limiter enforces a coarse per-address cooldown between checkout attempts.
// It is keyed by client address only, not by landing or payload, so a shared
// NAT address throttles unrelated buyers. Inherited behavior, kept as is.
type Limiter struct {
	store  Store
	window time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func New(store Store, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{
		store:  store,
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Allow reports whether the address may proceed. On an allowed attempt the
// timestamp is recorded unconditionally, even though the caller may still
// fail later for other reasons. A rejected attempt leaves the record
// untouched. Store failures are logged and fail open.
func (l *Limiter) Allow(ctx context.Context, addr string) bool {
	key := SanitizeKey(addr)

	last, found, err := l.store.Get(ctx, key)
	if err != nil {
		l.logger.Warn("Rate limit lookup failed", zap.String("key", key), zap.Error(err))
		return true
	}

	now := l.now().Unix()
	if found && now-last < int64(l.window.Seconds()) {
		return false
	}

	if err := l.store.Set(ctx, key, now); err != nil {
		l.logger.Warn("Rate limit update failed", zap.String("key", key), zap.Error(err))
	}
	return true
}

// SanitizeKey maps a client address to a key-safe token: anything outside
// [A-Za-z0-9_.-] becomes an underscore.
func SanitizeKey(addr string) string {
	if addr == "" {
		return "unknown"
	}

	var b strings.Builder
	b.Grow(len(addr))
	for _, r := range addr {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
