package checkout

type ItemProps struct {
	ID        string
	Name      string
	Price     float64
	ProductID string
	Quantity  int
}

type Props struct {
	ID         string
	CustomerID string
	Items      []ItemProps
}

// Create rebuilds an order and its items from plain props.
func Create(props Props) (*Order, error) {
	items := make([]OrderItem, 0, len(props.Items))
	for _, p := range props.Items {
		item, err := NewOrderItem(p.ID, p.Name, p.Price, p.ProductID, p.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return NewOrder(props.ID, props.CustomerID, items)
}
