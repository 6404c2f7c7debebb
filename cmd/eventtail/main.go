package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopcloud/backend/adapters/redisstore"
	"github.com/shopcloud/backend/domain/pubsub"
	"github.com/shopcloud/backend/pkg/config"
	"github.com/shopcloud/backend/pkg/logger"
	"github.com/shopcloud/backend/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// eventtail prints the domain events the http server forwards to redis.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot init logger: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatalf("cannot connect to redis: %v", err)
	}
	defer redis.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub := redisstore.NewRedisClient(redis).Subscribe(ctx, cfg.Events.Channel)
	defer sub.Close()

	applog.Infof("listening on %s", cfg.Events.Channel)

	for {
		event, err := sub.ReceiveEvent(ctx)
		switch {
		case errors.Is(err, pubsub.ErrMalformedEvent):
			applog.Warnw("cannot decode event", zap.Error(err))
			continue
		case errors.Is(err, context.Canceled):
			return
		case err != nil:
			applog.Errorf("cannot receive message: %v", err)
			return
		}

		applog.Infow("domain event",
			zap.String("name", event.Name.String()),
			zap.Time("occurred_at", event.OccurredAt),
			zap.Any("payload", event.Payload),
		)
	}
}
