package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/bankseed/pkg/lock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// renewScript extends the expiry only while the key still holds our token.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker implements lock.Locker with SET NX PX on a shared Redis.
type RedisLocker struct {
	client *redis.Client
	retry  time.Duration
	logger *slog.Logger
}

// NewWithRedis connects to the Redis at url and verifies it answers PING.
func NewWithRedis(
	ctx context.Context,
	url string,
	dialTimeout, retry time.Duration,
	logger *slog.Logger,
) (*RedisLocker, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	if dialTimeout > 0 {
		opt.DialTimeout = dialTimeout
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewWithRedisClient(client, retry, logger), nil
}

// NewWithRedisClient wraps an existing client.
func NewWithRedisClient(client *redis.Client, retry time.Duration, logger *slog.Logger) *RedisLocker {
	if retry <= 0 {
		retry = 250 * time.Millisecond
	}
	return &RedisLocker{
		client: client,
		retry:  retry,
		logger: logger,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error) {
	owner := uuid.NewString()
	logger := l.logger.With("key", key, "owner", owner)

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, key, owner, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %q: %w", key, err)
		}
		if ok {
			logger.Debug("Lock acquired")
			break
		}
		logger.Debug("Lock held elsewhere, waiting")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	stop := l.keepAlive(context.WithoutCancel(ctx), key, owner, ttl, logger)
	return func(ctx context.Context) error {
		stop()
		if err := releaseScript.Run(ctx, l.client, []string{key}, owner).Err(); err != nil {
			return fmt.Errorf("release lock %q: %w", key, err)
		}
		logger.Debug("Lock released")
		return nil
	}, nil
}

// keepAlive pushes the expiry of a held lock forward every third of ttl until
// the returned stop func is called or the lock is lost.
func (l *RedisLocker) keepAlive(
	ctx context.Context,
	key, owner string,
	ttl time.Duration,
	logger *slog.Logger,
) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(max(ttl/3, time.Millisecond))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			renewed, err := renewScript.Run(ctx, l.client, []string{key}, owner, ttl.Milliseconds()).Int64()
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				logger.Warn("Failed to renew lock", "error", err)
			case renewed == 0:
				logger.Error("Lock lost before release")
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

// Close closes the underlying client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
