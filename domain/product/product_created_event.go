package product

import (
	"time"

	"github.com/shopcloud/backend/domain"
)

const CreatedEventName domain.EventName = "ProductCreatedEvent"

type CreatedEvent struct {
	Product    Product
	occurredAt time.Time
}

func NewCreatedEvent(p Product) CreatedEvent {
	return CreatedEvent{
		Product:    p,
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
		"id":    e.Product.ID,
		"name":  e.Product.Name,
		"price": e.Product.Price,
	}
}
