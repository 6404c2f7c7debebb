package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopcloud/backend/domain/checkout"
	"github.com/shopcloud/backend/pkg/pagination"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts the order row and its items in one transaction.
func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	orderSchema := OrderSchema{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
	}
	items := newOrderItemSchemas(o)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(&orderSchema).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		return tx.Create(&items).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return checkout.ErrAlreadyExists
		}

		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// Update replaces the items of the order and refreshes its customer and
// total.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	items := newOrderItemSchemas(o)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderSchema{}).
			Where("id = ?", o.ID).
			Updates(map[string]interface{}{
				"customer_id": o.CustomerID,
				"total":       o.Total(),
			})
		if result.Error != nil {
			return fmt.Errorf("unexpected error: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return checkout.ErrNotFound
		}

		if err := tx.Where("order_id = ?", o.ID).Delete(&OrderItemSchema{}).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		return nil
	})
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*checkout.Order, error) {
	var orderSchema OrderSchema

	err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByID).
		Where("id = ?", id).
		First(&orderSchema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return orderSchema.ToDomainOrder()
}

// List returns one page of orders with their items, or all of them when
// pager is nil.
func (s *OrderStore) List(ctx context.Context, pager *pagination.Pager) ([]checkout.Order, error) {
	var orderSchemas []OrderSchema

	query := s.db.WithContext(ctx).Preload("Items", orderItemsByID).Order("created_at, id")
	if pager != nil {
		var total int64
		if err := s.db.WithContext(ctx).Model(&OrderSchema{}).Count(&total).Error; err != nil {
			return nil, fmt.Errorf("unexpected error: %w", err)
		}

		pager.SetTotal(total)

		offset, limit := pager.Do()
		query = query.Offset(offset).Limit(limit)
	}

	if err := query.Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for _, orderSchema := range orderSchemas {
		o, err := orderSchema.ToDomainOrder()
		if err != nil {
			return nil, fmt.Errorf("restore order %s: %w", orderSchema.ID, err)
		}

		orders = append(orders, *o)
	}

	return orders, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
