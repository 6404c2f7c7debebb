package domain

import "time"

// EventName identifies an event kind. Every kind is declared as a constant
// next to the event that carries it.
type EventName string

func (n EventName) String() string {
	return string(n)
}

type BaseDomainEvent interface {
	EventName() EventName
	OccurredAt() time.Time
	Payload() map[string]any
}
