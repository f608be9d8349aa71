package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/channel"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type redisEventListener struct {
	logger      *logrus.Logger
	cache       Client
	subscribers map[reflect.Type][]interface{}
	registry    map[string]reflect.Type
}

func NewRedisEventListener(
	logger *logrus.Logger,
	cache Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:      logger,
		cache:       cache,
		subscribers: make(map[reflect.Type][]interface{}),
		registry:    registry,
	}
}

func RegisterEventSubscriber[T event.Event](listener EventListener, subscriber EventSubscriber[T]) {
	var evt T
	listener.Register(reflect.TypeOf(evt), subscriber)
}

// Register must be called before Listen.
func (r *redisEventListener) Register(eventType reflect.Type, subscriber interface{}) {
	r.subscribers[eventType] = append(r.subscribers[eventType], subscriber)
}

func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) {
	channelNames := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("redis pubsub listener shutting down")
			return
		default:
		}

		r.listenOnce(ctx, channelNames)

		if ctx.Err() != nil {
			return
		}

		r.logger.Warn("redis pubsub disconnected, reconnecting in 1s...")
		time.Sleep(time.Second)
	}
}

func (r *redisEventListener) listenOnce(ctx context.Context, channelNames []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = pubSub.Close()
		case <-done:
		}
	}()

	for msg := range pubSub.Channel() {
		if ctx.Err() != nil {
			return
		}
		r.handleMessage(ctx, msg.Payload)
	}
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	var envelope RedisMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	concreteType, ok := r.registry[envelope.Type]
	if !ok {
		r.logger.WithError(fmt.Errorf("unknown event type: %s", envelope.Type)).Error("error getting event type")
		return
	}

	eventPtr := reflect.New(concreteType)
	if err := json.Unmarshal(envelope.Event, eventPtr.Interface()); err != nil {
		r.logger.WithError(err).Error("error unmarshalling event data into concrete type")
		return
	}

	r.notifySubscribers(ctx, concreteType, eventPtr.Elem())
}

func (r *redisEventListener) notifySubscribers(ctx context.Context, eventType reflect.Type, ev reflect.Value) {
	for _, sub := range r.subscribers[eventType] {
		method := reflect.ValueOf(sub).MethodByName("OnEvent")
		if !method.IsValid() {
			r.logger.Debug("subscriber does not implement OnEvent")
			continue
		}
		results := method.Call([]reflect.Value{reflect.ValueOf(ctx), ev})
		if len(results) > 0 && !results[0].IsNil() {
			if err, ok := results[0].Interface().(error); ok {
				r.logger.WithError(err).Errorf("error executing subscriber for event %s", eventType.Name())
			}
		}
	}
}
