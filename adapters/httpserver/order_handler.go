package httpserver

import (
	"fmt"

	"github.com/shopcloud/backend/adapters/httpserver/model"
	"github.com/shopcloud/backend/domain/checkout"
	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/pkg/apperror"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PlaceOrder godoc
// @Summary PlaceOrder
// @Description Place an order for a customer and credit reward points
// @Tags order
// @Accept json
// @Produce json
// @Param payload body model.PlaceOrderRequest true "Place order request"
// @Success 201 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.PlaceOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerStore.GetByID(ctx, req.CustomerID)
	if err != nil {
		return s.domainError(c, err)
	}

	ids := req.ProductIDs()

	products, err := s.ProductStore.ListByIDs(ctx, ids)
	if err != nil {
		return s.domainError(c, err)
	}

	if missing := missingProducts(ids, products); len(missing) > 0 {
		return s.domainError(c, fmt.Errorf("%w: %v", product.ErrNotFound, missing))
	}

	byID := make(map[string]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]checkout.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		p := byID[line.ProductID]

		item, err := checkout.NewOrderItem(gonanoid.Must(11), p.Name, p.Price, p.ID, line.Quantity)
		if err != nil {
			return s.domainError(c, err)
		}

		items = append(items, item)
	}

	order, err := checkout.PlaceOrder(cust, items)
	if err != nil {
		return s.domainError(c, err)
	}

	if err := s.OrderStore.Create(ctx, order); err != nil {
		return s.domainError(c, err)
	}

	if err := s.CustomerStore.Update(ctx, cust); err != nil {
		return s.domainError(c, err)
	}

	return s.created(c, model.NewOrderResponse(order))
}

// GetOrder godoc
// @Summary GetOrder
// @Description Get an order by id
// @Tags order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderStore.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewOrderResponse(order))
}

// ListOrders godoc
// @Summary ListOrders
// @Description List orders page by page
// @Tags order
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=model.ListOrdersResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ListRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	pager := req.Pager()

	orders, err := s.OrderStore.List(ctx, pager)
	if err != nil {
		return s.domainError(c, err)
	}

	resp := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, model.NewOrderResponse(&orders[i]))
	}

	return s.success(c, model.ListOrdersResponse{
		Orders:     resp,
		Pagination: pager.PageInfo(),
	})
}

// ChangeOrderCustomer godoc
// @Summary ChangeOrderCustomer
// @Description Move an order to another existing customer
// @Tags order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body model.ChangeOrderCustomerRequest true "Change customer request"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id}/customer [put]
func (s *Server) ChangeOrderCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeOrderCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderStore.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	if _, err := s.CustomerStore.GetByID(ctx, req.CustomerID); err != nil {
		return s.domainError(c, err)
	}

	if err := order.ChangeCustomerID(req.CustomerID); err != nil {
		return s.domainError(c, err)
	}

	if err := s.OrderStore.Update(ctx, order); err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewOrderResponse(order))
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.PlaceOrder)
	router.GET("", s.ListOrders)
	router.GET("/:id", s.GetOrder)
	router.PUT("/:id/customer", s.ChangeOrderCustomer)
}
