// internal/domain/checkout/submitter_test.go
package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/product"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"github.com/your-org/storefront-client/internal/infrastructure/storage"
	"github.com/your-org/storefront-client/internal/pkg/session"
)

type fixture struct {
	cart      *cart.Store
	session   *session.Session
	submitter *Submitter
}

// newFixture wires a submitter against the given backend URL with a
// fresh file-backed store
func newFixture(t *testing.T, backendURL string) *fixture {
	t.Helper()

	fs, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.API.BaseURL = backendURL
	cfg.API.RequestTimeout = 5 * time.Second

	logger, _ := test.NewNullLogger()
	sess := session.New(fs)
	client := api.NewClient(cfg, sess, logger)
	cartStore := cart.NewStore(context.Background(), fs, logger)

	return &fixture{
		cart:      cartStore,
		session:   sess,
		submitter: NewSubmitter(cartStore, sess, client, logger),
	}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	require.NoError(t, f.session.SetTokens(context.Background(), "opaque-token", "", nil))
}

func (f *fixture) fillCart(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.cart.AddItem(ctx, product.Product{ID: 1, Name: "RELX Infinity", Price: 29.99}))
	require.NoError(t, f.cart.AddItem(ctx, product.Product{ID: 1, Name: "RELX Infinity", Price: 29.99}))
	require.NoError(t, f.cart.AddItem(ctx, product.Product{ID: 5, Name: "Nasty Juice", Price: 21.99}))
}

func validAddress() order.ShippingAddress {
	return order.ShippingAddress{
		Street:  "123 Main Street",
		City:    "Manila",
		State:   "Metro Manila",
		ZipCode: "1000",
		Country: "Philippines",
	}
}

func receiptBody() map[string]interface{} {
	return map[string]interface{}{
		"message": "Order created successfully",
		"order": map[string]interface{}{
			"id":            7,
			"order_number":  "ORD-20260828-ABCD1234",
			"status":        "pending",
			"subtotal":      81.97,
			"shipping_cost": 150.0,
			"total":         231.97,
			"items": []map[string]interface{}{
				{"product_name": "RELX Infinity", "quantity": 2, "subtotal": 59.98},
				{"product_name": "Nasty Juice", "quantity": 1, "subtotal": 21.99},
			},
		},
	}
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	var calls int32
	var got order.CreateOrderRequest
	var auth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(receiptBody())
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	receipt, err := f.submitter.Submit(context.Background(), validAddress())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Equal(t, "ORD-20260828-ABCD1234", receipt.OrderNumber)
	assert.Equal(t, order.OrderStatusPending, receipt.Status)
	assert.InDelta(t, 231.97, receipt.Total, 0.001)

	// Request shape: items carry no prices, shipping cost comes from totals
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "Bearer opaque-token", auth)
	require.Len(t, got.Items, 2)
	assert.Equal(t, order.RequestItem{ProductID: 1, Quantity: 2}, got.Items[0])
	assert.Equal(t, order.RequestItem{ProductID: 5, Quantity: 1}, got.Items[1])
	assert.InDelta(t, 150.0, got.ShippingCost, 0.001)
	assert.Equal(t, "Manila", got.ShippingAddress.City)

	// Cart cleared only after the confirmed success
	assert.True(t, f.cart.IsEmpty())
	assert.Equal(t, StateIdle, f.submitter.State())
}

func TestSubmitUnauthenticated(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.fillCart(t)

	_, err := f.submitter.Submit(context.Background(), validAddress())
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestSubmitEmptyCart(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)

	_, err := f.submitter.Submit(context.Background(), validAddress())
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestSubmitInvalidAddress(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	addr := validAddress()
	addr.City = ""

	_, err := f.submitter.Submit(context.Background(), addr)

	var invalidErr *InvalidAddressError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "city", invalidErr.Field)
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.False(t, f.cart.IsEmpty())
}

func TestSubmitServer401(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Token has expired"})
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	_, err := f.submitter.Submit(context.Background(), validAddress())
	require.ErrorIs(t, err, ErrUnauthenticated)

	// Cart left unchanged
	assert.Len(t, f.cart.Lines(), 2)
}

func TestSubmitOrderRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Insufficient stock for RELX Infinity"})
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	_, err := f.submitter.Submit(context.Background(), validAddress())

	var rejected *OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Insufficient stock for RELX Infinity", rejected.Message)
	assert.False(t, f.cart.IsEmpty())
}

func TestSubmitLoginMessageRemapsToUnauthenticated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Please login to create an order"})
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	_, err := f.submitter.Submit(context.Background(), validAddress())
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSubmitNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // unreachable backend

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	_, err := f.submitter.Submit(context.Background(), validAddress())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.False(t, f.cart.IsEmpty())
}

func TestSubmitInFlightGuard(t *testing.T) {
	var calls int32
	entered := make(chan struct{}, 1)
	release := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		entered <- struct{}{}
		<-release
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(receiptBody())
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	f.login(t)
	f.fillCart(t)

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.submitter.Submit(context.Background(), validAddress())
		firstDone <- err
	}()

	// Wait until the first request is in flight
	<-entered
	assert.Equal(t, StateSubmitting, f.submitter.State())

	_, err := f.submitter.Submit(context.Background(), validAddress())
	require.ErrorIs(t, err, ErrAlreadyInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	// Exactly one order-creation request was sent
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, StateIdle, f.submitter.State())
}
