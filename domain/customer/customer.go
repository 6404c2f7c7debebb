package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopcloud/backend/domain"
	"github.com/shopcloud/backend/pkg/pagination"
	"go.uber.org/zap"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrAlreadyExists      = errors.New("customer already exists")
	ErrIDRequired         = errors.New("id is required")
	ErrNameRequired       = errors.New("name is required")
	ErrAddressRequired    = errors.New("address is mandatory to activate a customer")
	ErrInvalidRewardPoint = errors.New("reward points must not be negative")
)

type Store interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id string, opts ...Option) (*Customer, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Customer, error)
}

type Option func(c *Customer)

// WithDispatcher attaches the dispatcher the customer notifies. The default
// handlers for the customer events are registered on it.
func WithDispatcher(dispatcher domain.EventDispatcher) Option {
	return func(c *Customer) {
		c.dispatcher = dispatcher
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Customer) {
		c.logger = logger
	}
}

type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int

	dispatcher domain.EventDispatcher
	logger     *zap.SugaredLogger
}

// New builds a customer and, when a dispatcher is attached, announces it
// with a CustomerCreated event.
func New(id, name string, opts ...Option) (*Customer, error) {
	c, err := build(id, name, opts)
	if err != nil {
		return nil, err
	}

	if err := c.notify(NewCreatedEvent(c.id, c.name)); err != nil {
		return nil, err
	}

	return c, nil
}

// Restore rebuilds a stored customer. No CustomerCreated event is emitted.
func Restore(id, name string, address *Address, active bool, rewardPoints int, opts ...Option) (*Customer, error) {
	c, err := build(id, name, opts)
	if err != nil {
		return nil, err
	}

	c.address = address
	c.active = active
	c.rewardPoints = rewardPoints

	return c, nil
}

func build(id, name string, opts []Option) (*Customer, error) {
	c := &Customer{id: id, name: name}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.logger == nil {
		c.logger = zap.S()
	}

	if err := c.registerDefaultHandlers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) registerDefaultHandlers() error {
	if c.dispatcher == nil {
		return nil
	}

	handlers := []struct {
		name    domain.EventName
		handler domain.EventHandler
	}{
		{CreatedEventName, NewFirstCreatedLogHandler(c.logger)},
		{CreatedEventName, NewSecondCreatedLogHandler(c.logger)},
		{AddressChangedEventName, NewAddressChangedLogHandler(c.logger)},
	}

	for _, h := range handlers {
		if err := c.dispatcher.Register(h.name, h.handler); err != nil {
			return fmt.Errorf("register %s handler: %w", h.name, err)
		}
	}

	return nil
}

func (c *Customer) validate() error {
	if c.id == "" {
		return ErrIDRequired
	}

	if c.name == "" {
		return ErrNameRequired
	}

	return nil
}

func (c *Customer) notify(event domain.BaseDomainEvent) error {
	if c.dispatcher == nil {
		return nil
	}

	return c.dispatcher.Dispatch(event)
}

func (c *Customer) ID() string {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Address returns nil until an address has been set.
func (c *Customer) Address() *Address {
	return c.address
}

func (c *Customer) RewardPoints() int {
	return c.rewardPoints
}

func (c *Customer) IsActive() bool {
	return c.active
}

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	c.name = name

	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = &address

	return c.notify(NewAddressChangedEvent(c.id, c.name, address))
}

func (c *Customer) Activate() error {
	if c.address == nil {
		return ErrAddressRequired
	}

	c.active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrInvalidRewardPoint
	}

	c.rewardPoints += points

	return nil
}
