package customer

import (
	"time"

	"github.com/shopcloud/backend/domain"
)

const AddressChangedEventName domain.EventName = "CustomerAddressChangedEvent"

type AddressChangedEvent struct {
	ID         string
	Name       string
	Address    Address
	occurredAt time.Time
}

func NewAddressChangedEvent(id, name string, address Address) AddressChangedEvent {
	return AddressChangedEvent{
		ID:         id,
		Name:       name,
		Address:    address,
		occurredAt: time.Now(),
	}
}

func (e AddressChangedEvent) EventName() domain.EventName {
	return AddressChangedEventName
}

func (e AddressChangedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e AddressChangedEvent) Payload() map[string]any {
	return map[string]any{
		"id":      e.ID,
		"name":    e.Name,
		"address": e.Address.String(),
	}
}
