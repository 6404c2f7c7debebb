package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopcloud/backend/domain"
)

var ErrMalformedEvent = errors.New("malformed event message")

type Message struct {
	Channel string
	Payload string
}

type PubSub interface {
	ReceiveMessage(ctx context.Context) (Message, error)
	ReceiveEvent(ctx context.Context) (EventMessage, error)
	Close() error
}

type Service interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) PubSub
}

// EventMessage is the wire form of a domain event forwarded on a channel.
type EventMessage struct {
	Name       domain.EventName `json:"name"`
	OccurredAt time.Time        `json:"occurred_at"`
	Payload    map[string]any   `json:"payload"`
}

func NewEventMessage(event domain.BaseDomainEvent) EventMessage {
	return EventMessage{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Payload:    event.Payload(),
	}
}

// EncodeEvent returns the JSON payload published for event.
func EncodeEvent(event domain.BaseDomainEvent) (string, error) {
	payload, err := json.Marshal(NewEventMessage(event))
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	return string(payload), nil
}

// DecodeEventMessage parses a payload written by EncodeEvent. Payloads that
// are not JSON or carry no event name fail with ErrMalformedEvent.
func DecodeEventMessage(payload string) (EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return EventMessage{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	if msg.Name == "" {
		return EventMessage{}, fmt.Errorf("%w: missing name", ErrMalformedEvent)
	}

	return msg, nil
}
