package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopcloud/backend/domain/pubsub"
)

// RedisClient implements pubsub.Service on redis channels.
type RedisClient struct {
	rdb *redis.Client
}

// RedisPubSub is one channel subscription.
type RedisPubSub struct {
	rps *redis.PubSub
}

func NewRedisClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	if err := r.rdb.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	return nil
}

func (r *RedisClient) Subscribe(ctx context.Context, channel string) pubsub.PubSub {
	return &RedisPubSub{rps: r.rdb.Subscribe(ctx, channel)}
}

func (r *RedisPubSub) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	msg, err := r.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: msg.Payload,
	}, nil
}

// ReceiveEvent waits for the next forwarded domain event. A payload that is
// not an event fails with pubsub.ErrMalformedEvent and leaves the
// subscription usable.
func (r *RedisPubSub) ReceiveEvent(ctx context.Context) (pubsub.EventMessage, error) {
	msg, err := r.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.EventMessage{}, err
	}

	event, err := pubsub.DecodeEventMessage(msg.Payload)
	if err != nil {
		return pubsub.EventMessage{}, fmt.Errorf("channel %s: %w", msg.Channel, err)
	}

	return event, nil
}

func (r *RedisPubSub) Close() error {
	return r.rps.Close()
}
