package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
)

const DefaultSessionTTL = time.Hour

// redisJSONStore keeps JSON documents under a key pattern with a sliding TTL.
type redisJSONStore[T any] struct {
	cache      cache.Client
	keyPattern string
	entityType string
	ttl        time.Duration
}

func newRedisJSONStore[T any](c cache.Client, keyPattern, entityType string, ttl time.Duration) redisJSONStore[T] {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return redisJSONStore[T]{cache: c, keyPattern: keyPattern, entityType: entityType, ttl: ttl}
}

func (s redisJSONStore[T]) save(ctx context.Context, id string, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.entityType, err)
	}
	if err := s.cache.Set(ctx, fmt.Sprintf(s.keyPattern, id), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.entityType, err)
	}
	return nil
}

func (s redisJSONStore[T]) get(ctx context.Context, id string) (*T, error) {
	data, err := s.cache.Get(ctx, fmt.Sprintf(s.keyPattern, id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.NewNotFoundError(s.entityType, id)
		}
		return nil, fmt.Errorf("failed to load %s: %w", s.entityType, err)
	}
	entity := new(T)
	if err := json.Unmarshal([]byte(data), entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", s.entityType, err)
	}
	return entity, nil
}

func (s redisJSONStore[T]) delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, fmt.Sprintf(s.keyPattern, id))
}
