package model

import (
	"context"

	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/pkg/pagination"
	"github.com/shopcloud/backend/pkg/validation"
)

type AddressRequest struct {
	Street string `json:"street" mod:"trim" validate:"required,max=255"`
	Number int    `json:"number" validate:"required,min=1"`
	Zip    string `json:"zip" mod:"trim" validate:"required,max=20"`
	City   string `json:"city" mod:"trim" validate:"required,max=255"`
} // @name model.AddressRequest

func (r AddressRequest) ToDomain() (customer.Address, error) {
	return customer.NewAddress(r.Street, r.Number, r.Zip, r.City)
}

type CreateCustomerRequest struct {
	Name    string          `json:"name" mod:"trim" validate:"required,max=255"`
	Address *AddressRequest `json:"address" validate:"omitempty"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type GetCustomerRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetCustomerRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type ChangeCustomerAddressRequest struct {
	ID string `param:"id" validate:"required" swaggerignore:"true"`
	AddressRequest
} // @name model.ChangeCustomerAddressRequest

func (r *ChangeCustomerAddressRequest) Validate(ctx context.Context) error {
	return validation.StructCtx(ctx, r)
}

type CustomerResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Address      *customer.Address `json:"address"`
	Active       bool              `json:"active"`
	RewardPoints int               `json:"reward_points"`
} // @name model.CustomerResponse

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Address:      c.Address(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
}

type ListCustomersResponse struct {
	Customers  []CustomerResponse  `json:"customers"`
	Pagination pagination.PageInfo `json:"pagination"`
} // @name model.ListCustomersResponse

type CustomerOrderSummaryResponse struct {
	CustomerID string  `json:"customer_id"`
	OrderCount int64   `json:"order_count"`
	Total      float64 `json:"total"`
} // @name model.CustomerOrderSummaryResponse
