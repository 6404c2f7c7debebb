package model

import (
	"context"

	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/pkg/pagination"
	"github.com/shopcloud/backend/pkg/validation"
)

type CreateProductRequest struct {
	Name  string  `json:"name" mod:"trim" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gt=0"`
} // @name model.CreateProductRequest

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type GetProductRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetProductRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type IncreasePriceRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,required"`
	Percentage float64  `json:"percentage" validate:"gt=0"`
} // @name model.IncreasePriceRequest

func (r *IncreasePriceRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type ListProductsResponse struct {
	Products   []product.Product   `json:"products"`
	Pagination pagination.PageInfo `json:"pagination"`
} // @name model.ListProductsResponse
