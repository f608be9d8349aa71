package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/channel"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(t *testing.T, ev event.Event) string {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	data, err := json.Marshal(RedisMessage{Type: ev.Type(), Event: b})
	require.NoError(t, err)
	return string(data)
}

func TestRedisEventListener_InvalidatesCatalogue(t *testing.T) {
	logger := logrus.New()
	catalogue := NewTTLMap(time.Minute)
	catalogue.Set(ObjectCatalogueKey, []string{"User"})

	listener := NewRedisEventListener(logger, nil, event.Registry).(*redisEventListener)
	RegisterEventSubscriber[event.InvalidateCatalogueEvent](listener, NewInvalidateCatalogueSubscriber(logger, catalogue))

	listener.handleMessage(context.Background(), envelope(t, event.InvalidateCatalogueEvent{RequestedBy: "ops@example.com"}))

	_, ok := catalogue.Get(ObjectCatalogueKey)
	assert.False(t, ok)
}

func TestRedisEventListener_IgnoresUnknownAndMalformed(t *testing.T) {
	logger := logrus.New()
	catalogue := NewTTLMap(time.Minute)
	catalogue.Set(ObjectCatalogueKey, []string{"User"})

	listener := NewRedisEventListener(logger, nil, event.Registry).(*redisEventListener)
	RegisterEventSubscriber[event.InvalidateCatalogueEvent](listener, NewInvalidateCatalogueSubscriber(logger, catalogue))

	listener.handleMessage(context.Background(), `{"type":"SomethingElse","event":{}}`)
	listener.handleMessage(context.Background(), `not json`)

	_, ok := catalogue.Get(ObjectCatalogueKey)
	assert.True(t, ok)
}

func TestRedisEventPublisher_Publish(t *testing.T) {
	db, mock := redismock.NewClientMock()
	publisher := NewRedisEventPublisher(NewClientFromRedis(db), channel.MaskFlowChannel)
	ev := event.InvalidateCatalogueEvent{RequestedBy: "ops@example.com"}

	mock.ExpectPublish(string(channel.MaskFlowChannel), []byte(envelope(t, ev))).SetVal(1)

	require.NoError(t, publisher.Publish(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}
