// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"fmt"
)

// Submission failure taxonomy. All are recoverable at the caller; the cart
// store is never mutated on failure.
var (
	// ErrUnauthenticated means there is no usable session, or the server
	// rejected the submission for authentication reasons
	ErrUnauthenticated = errors.New("checkout: authentication required")

	// ErrEmptyCart means submission was attempted with no cart lines
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrAlreadyInFlight means another submission is still awaiting its
	// response; no duplicate order request was sent
	ErrAlreadyInFlight = errors.New("checkout: submission already in flight")
)

// InvalidAddressError reports the first missing shipping address field
type InvalidAddressError struct {
	Field string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("checkout: missing address field: %s", e.Field)
}

// NetworkError wraps a transport failure reaching the Orders API
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("checkout: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// OrderRejectedError carries the server's reason for refusing the order
type OrderRejectedError struct {
	Message string
}

func (e *OrderRejectedError) Error() string {
	return fmt.Sprintf("checkout: order rejected: %s", e.Message)
}
