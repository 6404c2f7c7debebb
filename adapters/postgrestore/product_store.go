package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/pkg/pagination"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	productSchema := ProductSchema{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}

	if err := s.db.WithContext(ctx).Create(&productSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return product.ErrAlreadyExists
		}

		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	return updateProduct(s.db.WithContext(ctx), p)
}

// UpdateAll saves products in one transaction; a missing product rolls back
// the whole batch with product.ErrNotFound.
func (s *ProductStore) UpdateAll(ctx context.Context, products []product.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			if err := updateProduct(tx, &products[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

func updateProduct(db *gorm.DB, p *product.Product) error {
	result := db.Model(&ProductSchema{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":  p.Name,
			"price": p.Price,
		})
	if result.Error != nil {
		return fmt.Errorf("unexpected error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var productSchema ProductSchema

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&productSchema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return productSchema.ToDomainProduct(), nil
}

func (s *ProductStore) ListByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	var productSchemas []ProductSchema
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&productSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(productSchemas))
	for _, productSchema := range productSchemas {
		products = append(products, *productSchema.ToDomainProduct())
	}

	return products, nil
}

// List returns one page of products, or all of them when pager is nil.
func (s *ProductStore) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	var productSchemas []ProductSchema

	query := s.db.WithContext(ctx).Order("created_at, id")
	if pager != nil {
		var total int64
		if err := s.db.WithContext(ctx).Model(&ProductSchema{}).Count(&total).Error; err != nil {
			return nil, fmt.Errorf("unexpected error: %w", err)
		}

		pager.SetTotal(total)

		offset, limit := pager.Do()
		query = query.Offset(offset).Limit(limit)
	}

	if err := query.Find(&productSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(productSchemas))
	for _, productSchema := range productSchemas {
		products = append(products, *productSchema.ToDomainProduct())
	}

	return products, nil
}
