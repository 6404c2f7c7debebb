package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopcloud/backend/adapters/event"
	"github.com/shopcloud/backend/adapters/postgrestore"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/pkg/config"
	"github.com/shopcloud/backend/pkg/logger"
	"github.com/shopcloud/backend/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

var products = []struct {
	name  string
	price float64
}{
	{"Keyboard", 49.9},
	{"Mouse", 19.9},
	{"Monitor", 229},
	{"Headset", 89.5},
}

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

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatalf("cannot connect to db: %v", err)
	}

	ctx := context.Background()
	productStore := postgrestore.NewProductStore(db)
	customerStore := postgrestore.NewCustomerStore(db)

	dispatcher := event.NewEventDispatcher()
	if err := dispatcher.Register(product.CreatedEventName, product.NewSendEmailWhenCreatedHandler(applog)); err != nil {
		applog.Fatal(err)
	}

	// create products
	for _, props := range products {
		p, err := product.Create(props.name, props.price, dispatcher)
		if err != nil {
			applog.Fatalf("cannot create product %s: %v", props.name, err)
		}

		if err := productStore.Create(ctx, p); err != nil {
			applog.Fatalf("cannot save product %s: %v", props.name, err)
		}
	}

	// create a demo customer
	address, err := customer.NewAddress("Avenida Principal", 999, "12345-678", "São Paulo")
	if err != nil {
		applog.Fatal(err)
	}

	c, err := customer.CreateWithAddress("Demo Customer", address,
		customer.WithDispatcher(dispatcher), customer.WithLogger(applog))
	if err != nil {
		applog.Fatalf("cannot create customer: %v", err)
	}

	if err := c.Activate(); err != nil {
		applog.Fatalf("cannot activate customer: %v", err)
	}

	if err := customerStore.Create(ctx, c); err != nil && !errors.Is(err, customer.ErrAlreadyExists) {
		applog.Fatalf("cannot save customer: %v", err)
	}

	applog.Infof("%d products and customer %s created successfully", len(products), c.ID())
}
