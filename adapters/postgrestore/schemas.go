package postgrestore

import (
	"time"

	"github.com/shopcloud/backend/domain/checkout"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/domain/product"
)

type CustomerSchema struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Street       string    `gorm:"column:street"`
	Number       int       `gorm:"column:number"`
	Zip          string    `gorm:"column:zip"`
	City         string    `gorm:"column:city"`
	Active       bool      `gorm:"column:active"`
	RewardPoints int       `gorm:"column:reward_points"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}

	if a := c.Address(); a != nil {
		s.Street = a.Street
		s.Number = a.Number
		s.Zip = a.Zip
		s.City = a.City
	}

	return s
}

// ToDomainCustomer restores the customer; opts let the caller attach a
// dispatcher to the loaded aggregate.
func (s *CustomerSchema) ToDomainCustomer(opts ...customer.Option) (*customer.Customer, error) {
	var address *customer.Address
	if s.Street != "" {
		address = &customer.Address{
			Street: s.Street,
			Number: s.Number,
			Zip:    s.Zip,
			City:   s.City,
		}
	}

	return customer.Restore(s.ID, s.Name, address, s.Active, s.RewardPoints, opts...)
}

type ProductSchema struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Price     float64   `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ProductSchema) TableName() string {
	return "products"
}

func (s *ProductSchema) ToDomainProduct() *product.Product {
	if s == nil {
		return nil
	}

	return &product.Product{
		ID:    s.ID,
		Name:  s.Name,
		Price: s.Price,
	}
}

type OrderSchema struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CustomerID string    `gorm:"column:customer_id"`
	Total      float64   `gorm:"column:total"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Items []OrderItemSchema `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderSchema) TableName() string {
	return "orders"
}

func (s *OrderSchema) ToDomainOrder() (*checkout.Order, error) {
	props := checkout.Props{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      make([]checkout.ItemProps, len(s.Items)),
	}

	for i, item := range s.Items {
		props.Items[i] = checkout.ItemProps{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return checkout.Create(props)
}

type OrderItemSchema struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrderID   string  `gorm:"column:order_id"`
	ProductID string  `gorm:"column:product_id"`
	Name      string  `gorm:"column:name"`
	Price     float64 `gorm:"column:price"`
	Quantity  int     `gorm:"column:quantity"`
}

func (OrderItemSchema) TableName() string {
	return "order_items"
}

func newOrderItemSchemas(o *checkout.Order) []OrderItemSchema {
	items := make([]OrderItemSchema, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemSchema{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return items
}

type CustomerSummaryQuerySchema struct {
	CustomerID string  `db:"customer_id"`
	OrderCount int64   `db:"order_count"`
	Total      float64 `db:"total"`
}

func (s CustomerSummaryQuerySchema) ToDomainSummary() checkout.CustomerSummary {
	return checkout.CustomerSummary{
		CustomerID: s.CustomerID,
		OrderCount: s.OrderCount,
		Total:      s.Total,
	}
}
