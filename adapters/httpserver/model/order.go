package model

import (
	"context"

	"github.com/shopcloud/backend/domain/checkout"
	"github.com/shopcloud/backend/pkg/pagination"
	"github.com/shopcloud/backend/pkg/validation"
)

type OrderLineRequest struct {
	ProductID string `json:"product_id" mod:"trim" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
} // @name model.OrderLineRequest

type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id" mod:"trim" validate:"required"`
	Items      []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
} // @name model.PlaceOrderRequest

func (r *PlaceOrderRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

func (r *PlaceOrderRequest) ProductIDs() []string {
	ids := make([]string, 0, len(r.Items))
	seen := make(map[string]struct{}, len(r.Items))

	for _, item := range r.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}

		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

type GetOrderRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetOrderRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type ChangeOrderCustomerRequest struct {
	ID         string `param:"id" validate:"required" swaggerignore:"true"`
	CustomerID string `json:"customer_id" mod:"trim" validate:"required"`
} // @name model.ChangeOrderCustomerRequest

func (r *ChangeOrderCustomerRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type OrderResponse struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id"`
	Items      []checkout.OrderItem `json:"items"`
	Total      float64              `json:"total"`
} // @name model.OrderResponse

func NewOrderResponse(o *checkout.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Items:      o.Items,
		Total:      o.Total(),
	}
}

type ListOrdersResponse struct {
	Orders     []OrderResponse     `json:"orders"`
	Pagination pagination.PageInfo `json:"pagination"`
} // @name model.ListOrdersResponse

type TopCustomersRequest struct {
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func (r *TopCustomersRequest) Validate(ctx context.Context) error {
	if r.Limit == 0 {
		r.Limit = pagination.DefaultLimit
	}

	return validation.StructCtx(ctx, r)
}
