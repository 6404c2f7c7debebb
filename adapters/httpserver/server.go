package httpserver

import (
	"net/http"
	"strings"

	"github.com/shopcloud/backend/adapters/event"
	"github.com/shopcloud/backend/adapters/event/listeners"
	"github.com/shopcloud/backend/adapters/httpserver/model"
	"github.com/shopcloud/backend/domain"
	"github.com/shopcloud/backend/domain/checkout"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/domain/pubsub"
	"github.com/shopcloud/backend/pkg/apperror"
	"github.com/shopcloud/backend/pkg/config"
	"github.com/shopcloud/backend/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// storage adapters
	CustomerStore customer.Store
	ProductStore  product.Store
	OrderStore    checkout.Store
	ReportStore   checkout.ReportStore

	// cache and stream adapters
	PubSubService pubsub.Service

	// event bus, one dispatcher per request
	NewEventDispatcher func() domain.EventDispatcher
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
		NewEventDispatcher: func() domain.EventDispatcher {
			return event.NewEventDispatcher()
		},
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.router.HideBanner = true

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))

	s.RegisterCustomerRoutes(s.router.Group("/api/customers"))
	s.RegisterProductRoutes(s.router.Group("/api/products"))
	s.RegisterOrderRoutes(s.router.Group("/api/orders"))
	s.RegisterReportRoutes(s.router.Group("/api/reports"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(s.requestLogger())
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

// forwardedEvents are held in the request outbox and reach the application
// listeners only once the request has been persisted.
var forwardedEvents = []domain.EventName{
	customer.CreatedEventName,
	customer.AddressChangedEventName,
	product.CreatedEventName,
}

// eventDispatcher builds the dispatcher handed to the aggregates of one
// request. Forwarded events are buffered in the returned outbox; flushEvents
// delivers them to the application listeners after the store write.
func (s *Server) eventDispatcher() (domain.EventDispatcher, *event.Outbox, error) {
	targets, err := s.applicationListeners()
	if err != nil {
		return nil, nil, err
	}

	outbox := event.NewOutbox(targets)

	d := s.NewEventDispatcher()
	for _, name := range forwardedEvents {
		if err := d.Register(name, outbox); err != nil {
			return nil, nil, err
		}
	}

	return d, outbox, nil
}

func (s *Server) applicationListeners() (domain.EventDispatcher, error) {
	d := s.NewEventDispatcher()

	if err := d.Register(product.CreatedEventName, product.NewSendEmailWhenCreatedHandler(s.Logger)); err != nil {
		return nil, err
	}

	if s.PubSubService == nil {
		return d, nil
	}

	publisher := listeners.NewEventPublisherListener(s.PubSubService, s.Config.Events.Channel)
	for _, name := range forwardedEvents {
		if err := d.Register(name, publisher); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// flushEvents delivers the events of a persisted request. The write already
// succeeded, so a delivery failure is logged and reported, not returned.
func (s *Server) flushEvents(c echo.Context, outbox *event.Outbox) {
	if err := outbox.Flush(); err != nil {
		s.Logger.Errorw("cannot deliver domain events",
			zap.Error(err),
			zap.String("request_id", s.requestID(c)),
		)
		sentry.WithContext(c).Error(err)
	}
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, model.SuccessResponse{
		Message: "Created",
		Data:    data,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
