package checkout

import (
	"context"
	"errors"

	"github.com/shopcloud/backend/pkg/pagination"
)

var (
	ErrNotFound           = errors.New("order not found")
	ErrAlreadyExists      = errors.New("order already exists")
	ErrIDRequired         = errors.New("id is required")
	ErrCustomerIDRequired = errors.New("customer id is required")
	ErrItemsRequired      = errors.New("items are required")
)

type Store interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Order, error)
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
} // @name checkout.Order

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{ID: id, CustomerID: customerID, Items: items}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrIDRequired
	}

	if o.CustomerID == "" {
		return ErrCustomerIDRequired
	}

	if len(o.Items) == 0 {
		return ErrItemsRequired
	}

	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Total()
	}

	return total
}

func (o *Order) ChangeCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDRequired
	}

	o.CustomerID = customerID

	return nil
}

func (o *Order) AddItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.Items = append(o.Items, item)

	return nil
}

// CustomerSummary aggregates the orders of one customer.
type CustomerSummary struct {
	CustomerID string  `json:"customer_id"`
	OrderCount int64   `json:"order_count"`
	Total      float64 `json:"total"`
} // @name checkout.CustomerSummary

type ReportStore interface {
	CustomerSummary(ctx context.Context, customerID string) (*CustomerSummary, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerSummary, error)
}
