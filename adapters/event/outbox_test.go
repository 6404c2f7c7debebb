package event_test

import (
	"errors"
	"testing"

	"github.com/shopcloud/backend/adapters/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutbox(t *testing.T) {
	t.Run("it should hold events until flushed", func(t *testing.T) {
		var calls []string
		target := event.NewEventDispatcher()
		require.NoError(t, target.Register(testEventName, &recordingHandler{id: "test", calls: &calls}))
		require.NoError(t, target.Register(otherEventName, &recordingHandler{id: "other", calls: &calls}))

		outbox := event.NewOutbox(target)
		ed := event.NewEventDispatcher()
		require.NoError(t, ed.Register(testEventName, outbox))
		require.NoError(t, ed.Register(otherEventName, outbox))

		require.NoError(t, ed.Dispatch(newTestEvent(otherEventName)))
		require.NoError(t, ed.Dispatch(newTestEvent(testEventName)))

		assert.Empty(t, calls)
		assert.Equal(t, 2, outbox.Len())

		require.NoError(t, outbox.Flush())

		assert.Equal(t, []string{"other", "test"}, calls)
		assert.Zero(t, outbox.Len())

		require.NoError(t, outbox.Flush())
		assert.Len(t, calls, 2)
	})

	t.Run("it should drop discarded events", func(t *testing.T) {
		var calls []string
		target := event.NewEventDispatcher()
		require.NoError(t, target.Register(testEventName, &recordingHandler{id: "test", calls: &calls}))

		outbox := event.NewOutbox(target)
		require.NoError(t, outbox.Handle(newTestEvent(testEventName)))

		outbox.Discard()
		require.NoError(t, outbox.Flush())

		assert.Empty(t, calls)
	})

	t.Run("it should return the first dispatch error", func(t *testing.T) {
		var calls []string
		errBoom := errors.New("boom")
		target := event.NewEventDispatcher()
		require.NoError(t, target.Register(testEventName, &recordingHandler{id: "test", calls: &calls, err: errBoom}))

		outbox := event.NewOutbox(target)
		require.NoError(t, outbox.Handle(newTestEvent(testEventName)))
		require.NoError(t, outbox.Handle(newTestEvent(testEventName)))

		assert.ErrorIs(t, outbox.Flush(), errBoom)
		assert.Equal(t, []string{"test"}, calls)
		assert.Zero(t, outbox.Len())
	})
}
