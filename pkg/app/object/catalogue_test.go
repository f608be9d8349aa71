package object

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/common"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto/mocks"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	cachemocks "github.com/NeuralTrust/MaskFlow/pkg/infra/cache/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_ListCachesSortedObjects(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("ListObjects", mock.Anything).Return([]string{"User", "Account", "Lead"}, nil).Once()

	c := NewCatalogue(logrus.New(), client, cache.NewTTLMap(time.Minute), cachemocks.NewEventPublisher(t))

	objects, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Account", "Lead", "User"}, objects)

	objects[0] = "mutated"
	again, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Account", "Lead", "User"}, again)
}

func TestCatalogue_ListError(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("ListObjects", mock.Anything).Return(nil, errors.New("protecto down")).Once()

	ttlMap := cache.NewTTLMap(time.Minute)
	_, err := NewCatalogue(logrus.New(), client, ttlMap, cachemocks.NewEventPublisher(t)).List(context.Background())

	assert.ErrorContains(t, err, "protecto down")
	assert.Equal(t, 0, ttlMap.Len())
}

func TestCatalogue_RefreshDropsCacheAndPublishes(t *testing.T) {
	client := mocks.NewClient(t)
	publisher := cachemocks.NewEventPublisher(t)
	ttlMap := cache.NewTTLMap(time.Minute)
	ttlMap.Set(cache.ObjectCatalogueKey, []string{"User"})

	publisher.On("Publish", mock.Anything, event.InvalidateCatalogueEvent{RequestedBy: "ops@example.com"}).
		Return(nil).Once()

	ctx := context.WithValue(context.Background(), common.OperatorKey, "ops@example.com")
	err := NewCatalogue(logrus.New(), client, ttlMap, publisher).Refresh(ctx)

	require.NoError(t, err)
	_, ok := ttlMap.Get(cache.ObjectCatalogueKey)
	assert.False(t, ok)
}

func TestCatalogue_RefreshPublishError(t *testing.T) {
	publisher := cachemocks.NewEventPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	err := NewCatalogue(logrus.New(), mocks.NewClient(t), cache.NewTTLMap(time.Minute), publisher).
		Refresh(context.Background())

	assert.ErrorContains(t, err, "redis down")
}
