// internal/domain/checkout/submitter.go
package checkout

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

// State represents the submitter's lifecycle for one submission attempt
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// Authenticator exposes the session state the submitter checks before
// building a request
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// OrderCreator is the external order-creation operation (Orders API)
type OrderCreator interface {
	CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Receipt, error)
}

// Submitter validates session and cart state, builds an order-creation
// request and submits it exactly once, guarding against concurrent
// duplicate submissions.
type Submitter struct {
	mu       sync.Mutex
	inFlight bool

	cart    *cart.Store
	session Authenticator
	orders  OrderCreator
	logger  *logrus.Logger
}

// NewSubmitter creates a checkout submitter
func NewSubmitter(cartStore *cart.Store, sess Authenticator, orders OrderCreator, logger *logrus.Logger) *Submitter {
	return &Submitter{
		cart:    cartStore,
		session: sess,
		orders:  orders,
		logger:  logger,
	}
}

// State reports whether a submission is currently awaiting its response
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return StateSubmitting
	}
	return StateIdle
}

// Submit places an order for the current cart contents. On success the
// cart is cleared and the receipt returned; every failure leaves the cart
// untouched. The Orders API is invoked at most once per call, with no
// retry, and a call made while another submission is in flight fails with
// ErrAlreadyInFlight without sending anything.
func (s *Submitter) Submit(ctx context.Context, address order.ShippingAddress) (*order.Receipt, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrAlreadyInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if !s.session.IsAuthenticated(ctx) {
		return nil, ErrUnauthenticated
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if field := address.MissingField(); field != "" {
		return nil, &InvalidAddressError{Field: field}
	}

	req := &order.CreateOrderRequest{
		Items:           make([]order.RequestItem, len(lines)),
		ShippingAddress: address,
		ShippingCost:    s.cart.Totals().Shipping,
	}
	for i, line := range lines {
		req.Items[i] = order.RequestItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	receipt, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, s.classify(err)
	}

	// Clearing happens only after a confirmed success response
	if err := s.cart.Clear(ctx); err != nil {
		s.logger.WithError(err).Warn("Order placed but cart could not be cleared")
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": receipt.OrderNumber,
		"total":        receipt.Total,
	}).Info("Order placed")

	return receipt, nil
}

// classify maps an Orders API failure onto the submission error taxonomy
func (s *Submitter) classify(err error) error {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return &NetworkError{Err: err}
	}

	if apiErr.StatusCode == http.StatusUnauthorized {
		return ErrUnauthenticated
	}
	// The server phrases auth problems as "please login ..."
	if strings.Contains(strings.ToLower(apiErr.Message), "login") {
		return ErrUnauthenticated
	}
	return &OrderRejectedError{Message: apiErr.Message}
}
