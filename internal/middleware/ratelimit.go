package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Limiter decides whether one more request from key fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit protege as rotas de escrita. Falhas do limiter deixam a
// requisição passar.
func RateLimit(l Limiter, prefix string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ok, err := l.Allow(c.Request.Context(), prefix+":"+ip)
		if err != nil {
			log.Warn("rate limiter error", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			log.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			httperr.TooManyRequests(c, "rate_limited", "Muitas requisições. Tente novamente em instantes.")
			return
		}

		c.Next()
	}
}

// ======================================================
// Redis (fixed window, shared between instances)
// ======================================================

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

// ======================================================
// In-memory (single instance)
// ======================================================

// MemoryLimiter keeps one token bucket per key. Buckets idle for longer
// than idleAfter are swept, which loses nothing: by then they are full.
type MemoryLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*memoryBucket
	every     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type memoryBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		limiters:  make(map[string]*memoryBucket),
		every:     rate.Every(window / time.Duration(limit)),
		burst:     limit,
		idleAfter: 2 * window,
		now:       time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleAfter {
		l.sweep(now)
	}

	b, ok := l.limiters[key]
	if !ok {
		b = &memoryBucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = b
	}
	b.seen = now

	return b.lim.AllowN(now, 1), nil
}

// Len reports how many keys currently hold a bucket.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.limiters {
		if now.Sub(b.seen) >= l.idleAfter {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}
