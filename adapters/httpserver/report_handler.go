package httpserver

import (
	"github.com/shopcloud/backend/adapters/httpserver/model"
	"github.com/shopcloud/backend/pkg/apperror"

	"github.com/labstack/echo/v4"
)

// TopCustomers godoc
// @Summary TopCustomers
// @Description Customers ranked by the total of their orders
// @Tags report
// @Produce json
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=[]model.CustomerOrderSummaryResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /reports/top-customers [get]
func (s *Server) TopCustomers(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.TopCustomersRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	summaries, err := s.ReportStore.TopCustomers(ctx, req.Limit)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	resp := make([]model.CustomerOrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp = append(resp, model.CustomerOrderSummaryResponse{
			CustomerID: summary.CustomerID,
			OrderCount: summary.OrderCount,
			Total:      summary.Total,
		})
	}

	return s.success(c, resp)
}

func (s *Server) RegisterReportRoutes(router *echo.Group) {
	router.GET("/top-customers", s.TopCustomers)
}
