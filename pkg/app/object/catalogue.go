package object

import (
	"context"
	"fmt"
	"sort"

	"github.com/NeuralTrust/MaskFlow/pkg/common"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

// Catalogue lists the objects Protecto can scan. The list is cached per
// replica and dropped everywhere on Refresh.
//
//go:generate mockery --name=Catalogue --dir=. --output=./mocks --filename=catalogue_mock.go --case=underscore
type Catalogue interface {
	List(ctx context.Context) ([]string, error)
	Refresh(ctx context.Context) error
}

type catalogue struct {
	logger    *logrus.Logger
	client    protecto.Client
	cache     *cache.TTLMap
	publisher cache.EventPublisher
}

func NewCatalogue(
	logger *logrus.Logger,
	client protecto.Client,
	ttlMap *cache.TTLMap,
	publisher cache.EventPublisher,
) Catalogue {
	return &catalogue{
		logger:    logger,
		client:    client,
		cache:     ttlMap,
		publisher: publisher,
	}
}

func (c *catalogue) List(ctx context.Context) ([]string, error) {
	if cached, ok := c.cache.Get(cache.ObjectCatalogueKey); ok {
		if objects, ok := cached.([]string); ok {
			return append([]string(nil), objects...), nil
		}
		c.logger.Warn("invalid object catalogue cache entry, reloading")
	}

	objects, err := c.client.ListObjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	sorted := append([]string(nil), objects...)
	sort.Strings(sorted)
	c.cache.Set(cache.ObjectCatalogueKey, sorted)

	return append([]string(nil), sorted...), nil
}

func (c *catalogue) Refresh(ctx context.Context) error {
	c.cache.Delete(cache.ObjectCatalogueKey)

	operator, _ := ctx.Value(common.OperatorKey).(string)
	err := c.publisher.Publish(ctx, event.InvalidateCatalogueEvent{RequestedBy: operator})
	if err != nil {
		c.logger.WithError(err).Error("failed to publish catalogue invalidation")
		return fmt.Errorf("failed to publish catalogue invalidation: %w", err)
	}
	return nil
}
