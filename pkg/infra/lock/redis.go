package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

const renewScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end`

const (
	DefaultLockTTL      = 30 * time.Second
	DefaultPollInterval = 25 * time.Millisecond
)

type redisLocker struct {
	client     *redis.Client
	logger     *logrus.Logger
	ttl        time.Duration
	poll       time.Duration
	renewEvery time.Duration
	newToken   func() string
}

// NewRedisLocker serializes work across replicas sharing one Redis. The
// lock expires after ttl so a crashed holder cannot block a key forever; a
// live holder keeps extending it every ttl/3 until it unlocks.
func NewRedisLocker(client *redis.Client, logger *logrus.Logger, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &redisLocker{
		client:     client,
		logger:     logger,
		ttl:        ttl,
		poll:       DefaultPollInterval,
		renewEvery: ttl / 3,
		newToken:   uuid.NewString,
	}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := fmt.Sprintf(cache.LockKeyPattern, key)
	token := l.newToken()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w for %s: %v", ErrLockTimeout, key, ctx.Err())
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w for %s: %v", ErrLockTimeout, key, ctx.Err())
		case <-time.After(l.poll):
		}
	}

	stop := make(chan struct{})
	go l.keepAlive(redisKey, token, stop)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := l.client.Eval(releaseCtx, releaseScript, []string{redisKey}, token).Err(); err != nil {
				l.logger.WithError(err).WithField("key", redisKey).Warn("failed to release lock")
			}
		})
	}, nil
}

func (l *redisLocker) keepAlive(redisKey, token string, stop <-chan struct{}) {
	ticker := time.NewTicker(l.renewEvery)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			held, err := l.renew(redisKey, token)
			if err != nil {
				l.logger.WithError(err).WithField("key", redisKey).Warn("failed to renew lock")
				continue
			}
			if !held {
				l.logger.WithField("key", redisKey).Error("lock expired while still held")
				return
			}
		}
	}
}

// renew extends the lock if token still owns it.
func (l *redisLocker) renew(redisKey, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.renewEvery)
	defer cancel()
	n, err := l.client.Eval(ctx, renewScript, []string{redisKey}, token, l.ttl.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
