package event

import (
	"fmt"
	"sync"

	"github.com/shopcloud/backend/domain"
)

type eventDispatcher struct {
	handlers map[domain.EventName][]domain.EventHandler
	mutex    sync.RWMutex
}

func NewEventDispatcher() *eventDispatcher {
	return &eventDispatcher{}
}

// Dispatch runs the handlers registered for the event name in order. The
// handler list is snapshotted first, so handlers registered while a dispatch
// is in flight only see later events.
func (ed *eventDispatcher) Dispatch(event domain.BaseDomainEvent) error {
	handlers := ed.Handlers(event.EventName())

	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			return fmt.Errorf("handle %s: %w", event.EventName(), err)
		}
	}

	return nil
}

func (ed *eventDispatcher) Register(name domain.EventName, handler domain.EventHandler) error {
	if name == "" {
		return domain.ErrEmptyEventName
	}

	if handler == nil {
		return domain.ErrNilEventHandler
	}

	ed.mutex.Lock()
	defer ed.mutex.Unlock()
	if ed.handlers == nil {
		ed.handlers = make(map[domain.EventName][]domain.EventHandler)
	}
	ed.handlers[name] = append(ed.handlers[name], handler)

	return nil
}

// Unregister removes the first registration of handler under name.
func (ed *eventDispatcher) Unregister(name domain.EventName, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers := ed.handlers[name]
	for i, h := range handlers {
		if !domain.SameHandler(h, handler) {
			continue
		}

		rest := make([]domain.EventHandler, 0, len(handlers)-1)
		rest = append(rest, handlers[:i]...)
		rest = append(rest, handlers[i+1:]...)

		if len(rest) == 0 {
			delete(ed.handlers, name)
		} else {
			ed.handlers[name] = rest
		}

		return
	}
}

func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = nil
}

// Handlers returns a copy of the handlers registered for name.
func (ed *eventDispatcher) Handlers(name domain.EventName) []domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	handlers, ok := ed.handlers[name]
	if !ok {
		return nil
	}

	out := make([]domain.EventHandler, len(handlers))
	copy(out, handlers)

	return out
}
