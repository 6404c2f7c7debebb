package checkout

import (
	"github.com/google/uuid"
	"github.com/shopcloud/backend/domain/customer"
)

// PlaceOrder creates an order for c and credits half of its total as
// reward points.
func PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired
	}

	order, err := NewOrder(uuid.NewString(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	if err := c.AddRewardPoints(int(order.Total() / 2)); err != nil {
		return nil, err
	}

	return order, nil
}

func Total(orders []Order) float64 {
	var total float64
	for i := range orders {
		total += orders[i].Total()
	}

	return total
}
