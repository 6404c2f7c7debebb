package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopcloud/backend/adapters/httpserver"
	"github.com/shopcloud/backend/adapters/postgrestore"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/domain/pubsub"
	"github.com/shopcloud/backend/pkg/config"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type fakePubSub struct {
	mu       sync.Mutex
	messages []pubsub.EventMessage
}

func (f *fakePubSub) Publish(ctx context.Context, channel string, message interface{}) error {
	var msg pubsub.EventMessage
	if err := json.Unmarshal([]byte(message.(string)), &msg); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)

	return nil
}

func (f *fakePubSub) Subscribe(ctx context.Context, channel string) pubsub.PubSub {
	return nil
}

func (f *fakePubSub) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.messages))
	for _, msg := range f.messages {
		names = append(names, msg.Name.String())
	}

	return names
}

var errStoreDown = errors.New("db down")

type failingProductStore struct {
	product.Store
}

func (failingProductStore) Create(ctx context.Context, p *product.Product) error {
	return errStoreDown
}

type failingCustomerStore struct {
	customer.Store
}

func (failingCustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	return errStoreDown
}

func (failingCustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	return errStoreDown
}

type testServer struct {
	*httpserver.Server
	logs   *observer.ObservedLogs
	pubsub *fakePubSub
}

type response struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), postgrestore.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = postgrestore.Migrate(sqlDB, "sqlite3")
	require.NoError(t, err)

	return db
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	ps := &fakePubSub{}

	server, err := httpserver.New(&config.Config{
		AppEnv: "local",
		Events: config.EventsConfig{Channel: "events"},
	}, zap.New(core).Sugar())
	require.NoError(t, err)

	server.CustomerStore = postgrestore.NewCustomerStore(db)
	server.ProductStore = postgrestore.NewProductStore(db)
	server.OrderStore = postgrestore.NewOrderStore(db)
	server.ReportStore = postgrestore.NewReportStore(sqlx.NewDb(sqlDB, "sqlite3"))
	server.PubSubService = ps

	return &testServer{Server: server, logs: logs, pubsub: ps}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	var resp response
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	}

	return rec.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v))

	return v
}

type customerData struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Address      *customer.Address `json:"address"`
	Active       bool              `json:"active"`
	RewardPoints int               `json:"reward_points"`
}

type orderData struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
}

func address() map[string]interface{} {
	return map[string]interface{}{"street": "Street 1", "number": 123, "zip": "13330-250", "city": "São Paulo"}
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!!!", rec.Body.String())
}

func TestCustomerRoutes(t *testing.T) {
	t.Run("it should create a customer and announce it", func(t *testing.T) {
		server := newTestServer(t)

		code, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "  John  "})
		require.Equal(t, http.StatusCreated, code)

		c := decode[customerData](t, resp.Data)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "John", c.Name)
		assert.Nil(t, c.Address)

		assert.Equal(t, []string{"CustomerCreatedEvent"}, server.pubsub.names())
		assert.Equal(t, 1, server.logs.FilterMessage("first handler of event: CustomerCreated").Len())
		assert.Equal(t, 1, server.logs.FilterMessage("second handler of event: CustomerCreated").Len())

		code, resp = server.do(t, http.MethodGet, "/api/customers/"+c.ID, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, c, decode[customerData](t, resp.Data))
	})

	t.Run("it should reject a customer without name", func(t *testing.T) {
		server := newTestServer(t)

		code, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "   "})

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "400002", resp.Code)
		assert.Empty(t, server.pubsub.names())
	})

	t.Run("it should return 404 for an unknown customer", func(t *testing.T) {
		server := newTestServer(t)

		code, resp := server.do(t, http.MethodGet, "/api/customers/unknown", nil)

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "404004", resp.Code)
	})

	t.Run("it should change the address and log it", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John"})
		c := decode[customerData](t, resp.Data)

		code, resp := server.do(t, http.MethodPut, "/api/customers/"+c.ID+"/address", address())
		require.Equal(t, http.StatusOK, code)

		updated := decode[customerData](t, resp.Data)
		require.NotNil(t, updated.Address)
		assert.Equal(t, "São Paulo", updated.Address.City)

		assert.Equal(t, []string{"CustomerCreatedEvent", "CustomerAddressChangedEvent"}, server.pubsub.names())
		assert.Equal(t, 1, server.logs.FilterMessage(
			"customer address: "+c.ID+" John changed to: Street 1, 123, 13330-250 São Paulo").Len())
	})

	t.Run("it should activate only a customer with an address", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John"})
		c := decode[customerData](t, resp.Data)

		code, resp := server.do(t, http.MethodPost, "/api/customers/"+c.ID+"/activate", nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "400003", resp.Code)

		_, resp = server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "Jane", "address": address()})
		c = decode[customerData](t, resp.Data)

		code, resp = server.do(t, http.MethodPost, "/api/customers/"+c.ID+"/activate", nil)
		require.Equal(t, http.StatusOK, code)
		assert.True(t, decode[customerData](t, resp.Data).Active)

		code, resp = server.do(t, http.MethodPost, "/api/customers/"+c.ID+"/deactivate", nil)
		require.Equal(t, http.StatusOK, code)
		assert.False(t, decode[customerData](t, resp.Data).Active)
	})

	t.Run("it should list customers page by page", func(t *testing.T) {
		server := newTestServer(t)

		for i := 0; i < 3; i++ {
			code, _ := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": fmt.Sprintf("Customer %d", i)})
			require.Equal(t, http.StatusCreated, code)
		}

		code, resp := server.do(t, http.MethodGet, "/api/customers?page=2&limit=2", nil)
		require.Equal(t, http.StatusOK, code)

		list := decode[struct {
			Customers  []customerData `json:"customers"`
			Pagination struct {
				TotalItems int64 `json:"total_items"`
				TotalPages int   `json:"total_pages"`
			} `json:"pagination"`
		}](t, resp.Data)
		assert.Len(t, list.Customers, 1)
		assert.Equal(t, int64(3), list.Pagination.TotalItems)
		assert.Equal(t, 2, list.Pagination.TotalPages)
	})
}

func TestProductRoutes(t *testing.T) {
	t.Run("it should create a product and send the email", func(t *testing.T) {
		server := newTestServer(t)

		code, resp := server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 10})
		require.Equal(t, http.StatusCreated, code)

		p := decode[product.Product](t, resp.Data)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, 10.0, p.Price)

		assert.Equal(t, []string{"ProductCreatedEvent"}, server.pubsub.names())
		assert.Equal(t, 1, server.logs.FilterMessage("sending email for new product").Len())

		code, resp = server.do(t, http.MethodGet, "/api/products/"+p.ID, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, p, decode[product.Product](t, resp.Data))
	})

	t.Run("it should reject a non positive price", func(t *testing.T) {
		server := newTestServer(t)

		code, resp := server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 0})

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "400002", resp.Code)
	})

	t.Run("it should increase prices", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 10})
		p1 := decode[product.Product](t, resp.Data)
		_, resp = server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 2", "price": 20})
		p2 := decode[product.Product](t, resp.Data)

		code, _ := server.do(t, http.MethodPost, "/api/products/increase-price", map[string]interface{}{
			"product_ids": []string{p1.ID, p2.ID},
			"percentage":  100,
		})
		require.Equal(t, http.StatusOK, code)

		_, resp = server.do(t, http.MethodGet, "/api/products/"+p2.ID, nil)
		assert.Equal(t, 40.0, decode[product.Product](t, resp.Data).Price)

		code, _ = server.do(t, http.MethodPost, "/api/products/increase-price", map[string]interface{}{
			"product_ids": []string{p1.ID, "unknown"},
			"percentage":  10,
		})
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestOrderRoutes(t *testing.T) {
	t.Run("it should place an order and credit reward points", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John"})
		c := decode[customerData](t, resp.Data)
		_, resp = server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 10})
		p := decode[product.Product](t, resp.Data)

		code, resp := server.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
			"customer_id": c.ID,
			"items":       []map[string]interface{}{{"product_id": p.ID, "quantity": 3}},
		})
		require.Equal(t, http.StatusCreated, code)

		o := decode[orderData](t, resp.Data)
		assert.Equal(t, c.ID, o.CustomerID)
		assert.Equal(t, 30.0, o.Total)

		_, resp = server.do(t, http.MethodGet, "/api/customers/"+c.ID, nil)
		assert.Equal(t, 15, decode[customerData](t, resp.Data).RewardPoints)

		code, resp = server.do(t, http.MethodGet, "/api/customers/"+c.ID+"/orders/summary", nil)
		require.Equal(t, http.StatusOK, code)
		summary := decode[struct {
			OrderCount int64   `json:"order_count"`
			Total      float64 `json:"total"`
		}](t, resp.Data)
		assert.Equal(t, int64(1), summary.OrderCount)
		assert.Equal(t, 30.0, summary.Total)

		code, resp = server.do(t, http.MethodGet, "/api/orders/"+o.ID, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, o, decode[orderData](t, resp.Data))
	})

	t.Run("it should refuse unknown products and customers", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John"})
		c := decode[customerData](t, resp.Data)

		code, _ := server.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
			"customer_id": c.ID,
			"items":       []map[string]interface{}{{"product_id": "unknown", "quantity": 1}},
		})
		assert.Equal(t, http.StatusNotFound, code)

		code, _ = server.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
			"customer_id": "unknown",
			"items":       []map[string]interface{}{{"product_id": "unknown", "quantity": 1}},
		})
		assert.Equal(t, http.StatusNotFound, code)

		code, resp = server.do(t, http.MethodPost, "/api/orders", map[string]interface{}{"customer_id": c.ID})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "400002", resp.Code)
	})

	t.Run("it should move an order to another customer", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John"})
		john := decode[customerData](t, resp.Data)
		_, resp = server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "Jane"})
		jane := decode[customerData](t, resp.Data)
		_, resp = server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 10})
		p := decode[product.Product](t, resp.Data)

		_, resp = server.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
			"customer_id": john.ID,
			"items":       []map[string]interface{}{{"product_id": p.ID, "quantity": 1}},
		})
		o := decode[orderData](t, resp.Data)

		code, resp := server.do(t, http.MethodPut, "/api/orders/"+o.ID+"/customer", map[string]interface{}{"customer_id": jane.ID})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, jane.ID, decode[orderData](t, resp.Data).CustomerID)

		code, _ = server.do(t, http.MethodPut, "/api/orders/"+o.ID+"/customer", map[string]interface{}{"customer_id": "unknown"})
		assert.Equal(t, http.StatusNotFound, code)

		code, resp = server.do(t, http.MethodGet, "/api/reports/top-customers?limit=5", nil)
		require.Equal(t, http.StatusOK, code)
		top := decode[[]struct {
			CustomerID string `json:"customer_id"`
		}](t, resp.Data)
		require.Len(t, top, 1)
		assert.Equal(t, jane.ID, top[0].CustomerID)
	})
}

func TestEventsWaitForTheStore(t *testing.T) {
	t.Run("it should not announce a product that was not saved", func(t *testing.T) {
		server := newTestServer(t)
		server.ProductStore = failingProductStore{Store: server.ProductStore}

		code, _ := server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 10})

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Empty(t, server.pubsub.names())
		assert.Zero(t, server.logs.FilterMessage("sending email for new product").Len())
	})

	t.Run("it should not announce a customer that was not saved", func(t *testing.T) {
		server := newTestServer(t)
		server.CustomerStore = failingCustomerStore{Store: server.CustomerStore}

		code, _ := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John", "address": address()})

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Empty(t, server.pubsub.names())
	})

	t.Run("it should not announce an address change that was not saved", func(t *testing.T) {
		server := newTestServer(t)

		_, resp := server.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "John"})
		c := decode[customerData](t, resp.Data)
		require.Equal(t, []string{"CustomerCreatedEvent"}, server.pubsub.names())

		server.CustomerStore = failingCustomerStore{Store: server.CustomerStore}

		code, _ := server.do(t, http.MethodPut, "/api/customers/"+c.ID+"/address", address())

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, []string{"CustomerCreatedEvent"}, server.pubsub.names())
	})

	t.Run("it should announce after the product is saved", func(t *testing.T) {
		server := newTestServer(t)

		code, _ := server.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "Product 1", "price": 10})

		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, []string{"ProductCreatedEvent"}, server.pubsub.names())
		assert.Equal(t, 1, server.logs.FilterMessage("sending email for new product").Len())
	})
}
