package customer

import "github.com/google/uuid"

// Create builds a customer with a generated id.
func Create(name string, opts ...Option) (*Customer, error) {
	return New(uuid.NewString(), name, opts...)
}

func CreateWithAddress(name string, address Address, opts ...Option) (*Customer, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	c, err := Create(name, opts...)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	return c, nil
}
