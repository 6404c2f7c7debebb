package listeners_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopcloud/backend/adapters/event"
	"github.com/shopcloud/backend/adapters/event/listeners"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/domain/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePubSub struct {
	published []pubsub.Message
	err       error
}

func (f *fakePubSub) Publish(ctx context.Context, channel string, message interface{}) error {
	if f.err != nil {
		return f.err
	}

	f.published = append(f.published, pubsub.Message{Channel: channel, Payload: message.(string)})
	return nil
}

func (f *fakePubSub) Subscribe(ctx context.Context, channel string) pubsub.PubSub {
	return nil
}

func TestEventPublisherListener(t *testing.T) {
	t.Run("it should forward the event as json", func(t *testing.T) {
		ps := &fakePubSub{}
		ed := event.NewEventDispatcher()
		require.NoError(t, ed.Register(customer.CreatedEventName, listeners.NewEventPublisherListener(ps, "events")))

		_, err := customer.New("C1", "Customer 1", customer.WithDispatcher(ed), customer.WithLogger(zap.NewNop().Sugar()))
		require.NoError(t, err)

		require.Len(t, ps.published, 1)
		assert.Equal(t, "events", ps.published[0].Channel)

		var msg pubsub.EventMessage
		require.NoError(t, json.Unmarshal([]byte(ps.published[0].Payload), &msg))
		assert.Equal(t, customer.CreatedEventName, msg.Name)
		assert.Equal(t, map[string]any{"id": "C1", "name": "Customer 1"}, msg.Payload)
		assert.False(t, msg.OccurredAt.IsZero())
	})

	t.Run("it should fail the dispatch when publishing fails", func(t *testing.T) {
		errDown := errors.New("redis down")
		ed := event.NewEventDispatcher()
		require.NoError(t, ed.Register(customer.CreatedEventName,
			listeners.NewEventPublisherListener(&fakePubSub{err: errDown}, "events")))

		_, err := customer.New("C1", "Customer 1", customer.WithDispatcher(ed), customer.WithLogger(zap.NewNop().Sugar()))

		assert.ErrorIs(t, err, errDown)
	})
}
