package repository

import (
	"context"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
)

type ReviewSessionRepository struct {
	store redisJSONStore[masking.ReviewSession]
}

func NewReviewSessionRepository(c cache.Client, ttl time.Duration) masking.ReviewRepository {
	return &ReviewSessionRepository{
		store: newRedisJSONStore[masking.ReviewSession](c, cache.ReviewSessionKeyPattern, "review_session", ttl),
	}
}

func (r *ReviewSessionRepository) Save(ctx context.Context, session *masking.ReviewSession) error {
	return r.store.save(ctx, session.ID, session)
}

func (r *ReviewSessionRepository) Get(ctx context.Context, id string) (*masking.ReviewSession, error) {
	return r.store.get(ctx, id)
}

func (r *ReviewSessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}
