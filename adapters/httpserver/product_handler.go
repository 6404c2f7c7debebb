package httpserver

import (
	"fmt"

	"github.com/shopcloud/backend/adapters/httpserver/model"
	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/pkg/apperror"

	"github.com/labstack/echo/v4"
)

// CreateProduct godoc
// @Summary CreateProduct
// @Description Create a product and announce it
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.CreateProductRequest true "Create product request"
// @Success 201 {object} model.SuccessResponse{data=product.Product}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateProductRequest
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

	p, err := product.Create(req.Name, req.Price, dispatcher)
	if err != nil {
		return s.domainError(c, err)
	}

	if err := s.ProductStore.Create(ctx, p); err != nil {
		return s.domainError(c, err)
	}

	s.flushEvents(c, outbox)

	return s.created(c, p)
}

// GetProduct godoc
// @Summary GetProduct
// @Description Get a product by id
// @Tags product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.SuccessResponse{data=product.Product}
// @Failure 404 {object} model.ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	p, err := s.ProductStore.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, p)
}

// ListProducts godoc
// @Summary ListProducts
// @Description List products page by page
// @Tags product
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=model.ListProductsResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /products [get]
func (s *Server) ListProducts(c echo.Context) error {
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

	products, err := s.ProductStore.List(ctx, pager)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.ListProductsResponse{
		Products:   products,
		Pagination: pager.PageInfo(),
	})
}

// IncreasePrices godoc
// @Summary IncreasePrices
// @Description Raise the price of the given products by a percentage
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.IncreasePriceRequest true "Increase price request"
// @Success 200 {object} model.SuccessResponse{data=[]product.Product}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /products/increase-price [post]
func (s *Server) IncreasePrices(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.IncreasePriceRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	products, err := s.ProductStore.ListByIDs(ctx, req.ProductIDs)
	if err != nil {
		return s.domainError(c, err)
	}

	if missing := missingProducts(req.ProductIDs, products); len(missing) > 0 {
		return s.domainError(c, fmt.Errorf("%w: %v", product.ErrNotFound, missing))
	}

	products, err = product.IncreasePrice(products, req.Percentage)
	if err != nil {
		return s.domainError(c, err)
	}

	if err := s.ProductStore.UpdateAll(ctx, products); err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, products)
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.GET("", s.ListProducts)
	router.POST("/increase-price", s.IncreasePrices)
	router.GET("/:id", s.GetProduct)
}

func missingProducts(ids []string, products []product.Product) []string {
	found := make(map[string]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}
