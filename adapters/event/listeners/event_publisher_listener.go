package listeners

import (
	"context"
	"fmt"

	"github.com/shopcloud/backend/domain"
	"github.com/shopcloud/backend/domain/pubsub"
)

// EventPublisherListener forwards every event it receives to a pubsub
// channel as a JSON pubsub.EventMessage.
type EventPublisherListener struct {
	pubsubService pubsub.Service
	channel       string
}

func NewEventPublisherListener(pubsubService pubsub.Service, channel string) *EventPublisherListener {
	return &EventPublisherListener{pubsubService: pubsubService, channel: channel}
}

func (l *EventPublisherListener) Handle(event domain.BaseDomainEvent) error {
	payload, err := pubsub.EncodeEvent(event)
	if err != nil {
		return err
	}

	if err := l.pubsubService.Publish(context.Background(), l.channel, payload); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	return nil
}
