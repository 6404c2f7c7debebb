package product

import (
	"github.com/google/uuid"
	"github.com/shopcloud/backend/domain"
)

// Create builds a product with a generated id and announces it on the
// dispatcher when one is given.
func Create(name string, price float64, dispatcher domain.EventDispatcher) (*Product, error) {
	p, err := New(uuid.NewString(), name, price)
	if err != nil {
		return nil, err
	}

	if dispatcher == nil {
		return p, nil
	}

	if err := dispatcher.Dispatch(NewCreatedEvent(*p)); err != nil {
		return nil, err
	}

	return p, nil
}
