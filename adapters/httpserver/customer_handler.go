package httpserver

import (
	"github.com/shopcloud/backend/adapters/httpserver/model"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/pkg/apperror"

	"github.com/labstack/echo/v4"
)

// CreateCustomer godoc
// @Summary CreateCustomer
// @Description Create a customer, optionally with an address
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	dispatcher, outbox, err := s.eventDispatcher()
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	opts := []customer.Option{customer.WithDispatcher(dispatcher), customer.WithLogger(s.Logger)}

	var cust *customer.Customer
	if req.Address != nil {
		address, err := req.Address.ToDomain()
		if err != nil {
			return s.domainError(c, err)
		}

		cust, err = customer.CreateWithAddress(req.Name, address, opts...)
		if err != nil {
			return s.domainError(c, err)
		}
	} else {
		cust, err = customer.Create(req.Name, opts...)
		if err != nil {
			return s.domainError(c, err)
		}
	}

	if err := s.CustomerStore.Create(ctx, cust); err != nil {
		return s.domainError(c, err)
	}

	s.flushEvents(c, outbox)

	return s.created(c, model.NewCustomerResponse(cust))
}

// GetCustomer godoc
// @Summary GetCustomer
// @Description Get a customer by id
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerStore.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewCustomerResponse(cust))
}

// ListCustomers godoc
// @Summary ListCustomers
// @Description List customers page by page
// @Tags customer
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=model.ListCustomersResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
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

	customers, err := s.CustomerStore.List(ctx, pager)
	if err != nil {
		return s.domainError(c, err)
	}

	resp := make([]model.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, model.NewCustomerResponse(&customers[i]))
	}

	return s.success(c, model.ListCustomersResponse{
		Customers:  resp,
		Pagination: pager.PageInfo(),
	})
}

// ChangeCustomerAddress godoc
// @Summary ChangeCustomerAddress
// @Description Change the address of a customer and announce it
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.ChangeCustomerAddressRequest true "Address"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/address [put]
func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeCustomerAddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	dispatcher, outbox, err := s.eventDispatcher()
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	cust, err := s.CustomerStore.GetByID(ctx, req.ID,
		customer.WithDispatcher(dispatcher), customer.WithLogger(s.Logger))
	if err != nil {
		return s.domainError(c, err)
	}

	address, err := req.AddressRequest.ToDomain()
	if err != nil {
		return s.domainError(c, err)
	}

	if err := cust.ChangeAddress(address); err != nil {
		return s.domainError(c, err)
	}

	if err := s.CustomerStore.Update(ctx, cust); err != nil {
		return s.domainError(c, err)
	}

	s.flushEvents(c, outbox)

	return s.success(c, model.NewCustomerResponse(cust))
}

// ActivateCustomer godoc
// @Summary ActivateCustomer
// @Description Activate a customer, which requires an address
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/activate [post]
func (s *Server) ActivateCustomer(c echo.Context) error {
	return s.toggleCustomer(c, func(cust *customer.Customer) error {
		return cust.Activate()
	})
}

// DeactivateCustomer godoc
// @Summary DeactivateCustomer
// @Description Deactivate a customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/deactivate [post]
func (s *Server) DeactivateCustomer(c echo.Context) error {
	return s.toggleCustomer(c, func(cust *customer.Customer) error {
		cust.Deactivate()
		return nil
	})
}

func (s *Server) toggleCustomer(c echo.Context, fn func(cust *customer.Customer) error) error {
	var (
		ctx = c.Request().Context()
		req model.GetCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerStore.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	if err := fn(cust); err != nil {
		return s.domainError(c, err)
	}

	if err := s.CustomerStore.Update(ctx, cust); err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewCustomerResponse(cust))
}

// GetCustomerOrderSummary godoc
// @Summary GetCustomerOrderSummary
// @Description Count and sum the orders of a customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerOrderSummaryResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/orders/summary [get]
func (s *Server) GetCustomerOrderSummary(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	if _, err := s.CustomerStore.GetByID(ctx, req.ID); err != nil {
		return s.domainError(c, err)
	}

	summary, err := s.ReportStore.CustomerSummary(ctx, req.ID)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.CustomerOrderSummaryResponse{
		CustomerID: summary.CustomerID,
		OrderCount: summary.OrderCount,
		Total:      summary.Total,
	})
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
	router.POST("/:id/activate", s.ActivateCustomer)
	router.POST("/:id/deactivate", s.DeactivateCustomer)
	router.GET("/:id/orders/summary", s.GetCustomerOrderSummary)
}
