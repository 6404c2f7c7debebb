package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

const FlushTime = 2 * time.Second

type Reporter struct {
	hub *sentrygo.Hub
}

// WithContext returns a reporter bound to the request hub, or to the
// current hub outside of the sentry echo middleware.
func WithContext(c echo.Context) *Reporter {
	hub := sentryecho.GetHubFromContext(c)
	if hub == nil {
		hub = sentrygo.CurrentHub()
	}

	return &Reporter{hub: hub}
}

func (r *Reporter) Error(err error) {
	r.hub.CaptureException(err)
}
