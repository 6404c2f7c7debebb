package domain

import (
	"errors"
	"reflect"
)

var (
	ErrEmptyEventName  = errors.New("event name is required")
	ErrNilEventHandler = errors.New("event handler is required")
)

type EventHandler interface {
	Handle(event BaseDomainEvent) error
}

// EventHandlerFunc adapts a plain function to EventHandler.
type EventHandlerFunc func(event BaseDomainEvent) error

func (f EventHandlerFunc) Handle(event BaseDomainEvent) error {
	return f(event)
}

// EventDispatcher delivers events synchronously to the handlers registered
// for their name, in registration order. Dispatch stops at the first handler
// error and returns it.
type EventDispatcher interface {
	Register(name EventName, handler EventHandler) error
	Unregister(name EventName, handler EventHandler)
	UnregisterAll()
	Dispatch(event BaseDomainEvent) error
	Handlers(name EventName) []EventHandler
}

// SameHandler reports whether a and b are the same handler reference.
// Funcs, maps, channels and pointers compare by address, slices by backing
// array and length, and structs and arrays field by field, so decorators
// wrapping a func handler can be unregistered too. It never panics.
func SameHandler(a, b EventHandler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Func, reflect.Map, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}

		return sameValue(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}

		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}

		return true
	}

	return a.Equal(b)
}
