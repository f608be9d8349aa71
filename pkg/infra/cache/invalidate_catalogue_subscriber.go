package cache

import (
	"context"

	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type invalidateCatalogueSubscriber struct {
	logger    *logrus.Logger
	catalogue *TTLMap
}

func NewInvalidateCatalogueSubscriber(logger *logrus.Logger, catalogue *TTLMap) EventSubscriber[event.InvalidateCatalogueEvent] {
	return &invalidateCatalogueSubscriber{
		logger:    logger,
		catalogue: catalogue,
	}
}

func (s *invalidateCatalogueSubscriber) OnEvent(_ context.Context, evt event.InvalidateCatalogueEvent) error {
	s.logger.WithField("requested_by", evt.RequestedBy).Debug("invalidating object catalogue cache")
	s.catalogue.Delete(ObjectCatalogueKey)
	return nil
}
