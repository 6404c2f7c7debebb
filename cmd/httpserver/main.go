package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/shopcloud/backend/adapters/event"
	"github.com/shopcloud/backend/adapters/httpserver"
	"github.com/shopcloud/backend/adapters/postgrestore"
	"github.com/shopcloud/backend/adapters/redisstore"
	"github.com/shopcloud/backend/domain"
	"github.com/shopcloud/backend/pkg/config"
	"github.com/shopcloud/backend/pkg/logger"
	"github.com/shopcloud/backend/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

// @title Shop APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Customers, products and orders.
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

	opts := postgrestore.ParseFromConfig(cfg)

	sqlxDB, err := postgrestore.NewSqlxConnection(opts)
	if err != nil {
		applog.Fatalf("cannot connect to db: %v", err)
	}
	defer sqlxDB.Close()

	n, err := postgrestore.Migrate(sqlxDB.DB, "postgres")
	if err != nil {
		applog.Fatalf("cannot migrate db: %v", err)
	}
	applog.Infof("applied %d migrations", n)

	db, err := postgrestore.NewConnection(opts)
	if err != nil {
		applog.Fatal(err)
	}

	server, err := httpserver.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}

	// event bus
	server.NewEventDispatcher = func() domain.EventDispatcher {
		return event.NewEventDispatcher()
	}

	// store adapters
	server.CustomerStore = postgrestore.NewCustomerStore(db)
	server.ProductStore = postgrestore.NewProductStore(db)
	server.OrderStore = postgrestore.NewOrderStore(db)
	server.ReportStore = postgrestore.NewReportStore(sqlxDB)

	// redis store
	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	switch {
	case errors.Is(err, redisstore.ErrEmptyAddr):
		applog.Warn("redis is not configured, domain events stay in process")
	case err != nil:
		applog.Fatalf("cannot connect to redis: %v", err)
	default:
		defer redis.Close()
		server.PubSubService = redisstore.NewRedisClient(redis)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Info("server started!")
	applog.Fatal(http.ListenAndServe(addr, server))
}
