package checkout

import "errors"

var (
	ErrItemIDRequired       = errors.New("item id is required")
	ErrItemNameRequired     = errors.New("item name is required")
	ErrProductIDRequired    = errors.New("product id is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrInvalidItemUnitPrice = errors.New("item price must be greater than zero")
)

type OrderItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
} // @name checkout.OrderItem

func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{
		ID:        id,
		Name:      name,
		Price:     price,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := item.Validate(); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

func (i OrderItem) Validate() error {
	switch {
	case i.ID == "":
		return ErrItemIDRequired
	case i.Name == "":
		return ErrItemNameRequired
	case i.ProductID == "":
		return ErrProductIDRequired
	case i.Price <= 0:
		return ErrInvalidItemUnitPrice
	case i.Quantity <= 0:
		return ErrInvalidQuantity
	}

	return nil
}

func (i OrderItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}
