package event

import (
	"sync"

	"github.com/shopcloud/backend/domain"
)

// Outbox is an EventHandler that holds the events it receives until Flush
// hands them, in arrival order, to the target dispatcher.
type Outbox struct {
	target domain.EventDispatcher
	events []domain.BaseDomainEvent
	mutex  sync.Mutex
}

func NewOutbox(target domain.EventDispatcher) *Outbox {
	return &Outbox{target: target}
}

func (o *Outbox) Handle(event domain.BaseDomainEvent) error {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.events = append(o.events, event)

	return nil
}

// Flush dispatches the pending events and empties the outbox. It stops at
// the first failing event; the events after it are dropped.
func (o *Outbox) Flush() error {
	o.mutex.Lock()
	events := o.events
	o.events = nil
	o.mutex.Unlock()

	for _, event := range events {
		if err := o.target.Dispatch(event); err != nil {
			return err
		}
	}

	return nil
}

func (o *Outbox) Discard() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.events = nil
}

func (o *Outbox) Len() int {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	return len(o.events)
}
