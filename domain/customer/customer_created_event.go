package customer

import (
	"time"

	"github.com/shopcloud/backend/domain"
)

const CreatedEventName domain.EventName = "CustomerCreatedEvent"

type CreatedEvent struct {
	ID         string
	Name       string
	occurredAt time.Time
}

func NewCreatedEvent(id, name string) CreatedEvent {
	return CreatedEvent{
		ID:         id,
		Name:       name,
		occurredAt: time.Now(),
	}
}

func (e CreatedEvent) EventName() domain.EventName {
	return CreatedEventName
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e CreatedEvent) Payload() map[string]any {
	return map[string]any{
		"id":   e.ID,
		"name": e.Name,
	}
}
