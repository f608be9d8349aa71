package repository

import (
	"context"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
)

type ScanSessionRepository struct {
	store redisJSONStore[scan.Session]
}

func NewScanSessionRepository(c cache.Client, ttl time.Duration) scan.Repository {
	return &ScanSessionRepository{
		store: newRedisJSONStore[scan.Session](c, cache.ScanSessionKeyPattern, "scan_session", ttl),
	}
}

func (r *ScanSessionRepository) Save(ctx context.Context, session *scan.Session) error {
	return r.store.save(ctx, session.ID, session)
}

func (r *ScanSessionRepository) Get(ctx context.Context, id string) (*scan.Session, error) {
	return r.store.get(ctx, id)
}

func (r *ScanSessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}
